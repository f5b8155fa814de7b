/*
Copyright 2025 The TeenMind Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package guardian

import (
	"fmt"
	"strconv"

	"github.com/feng2740249312/teenmind-guardian/pkg/tool/httpclient"
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/log"
)

// Dashboard fetches the aggregated dashboard for a user over the latest
// days-sized window.
func (c *Client) Dashboard(userID string, days int) (*DashboardData, error) {
	url := fmt.Sprintf("/api/users/%s/dashboard", userID)

	resp := &DashboardData{}
	_, err := c.Get(url,
		httpclient.SetQueryParam("days", strconv.Itoa(days)),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("get dashboard for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

func (c *Client) RegisterUser(args *UserRegistration) (*User, error) {
	url := "/api/users/register"

	resp := &User{}
	_, err := c.Post(url, httpclient.SetBody(args), httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("register user %s error: %s", args.Username, err)
		return nil, err
	}

	return resp, nil
}

func (c *Client) Login(username, password string) (*LoginResult, error) {
	url := "/api/users/login"

	resp := &LoginResult{}
	_, err := c.Post(url,
		httpclient.SetBody(&loginArgs{Username: username, Password: password}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("login user %s error: %s", username, err)
		return nil, err
	}

	return resp, nil
}

func (c *Client) GetUser(userID string) (*User, error) {
	url := fmt.Sprintf("/api/users/%s", userID)

	resp := &User{}
	_, err := c.Get(url, httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("get user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

func (c *Client) UpdateUser(userID string, patch *UserPatch) (*UpdateResult, error) {
	url := fmt.Sprintf("/api/users/%s", userID)

	resp := &UpdateResult{}
	_, err := c.Put(url, httpclient.SetBody(patch), httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("update user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

func (c *Client) DeleteUser(userID string) error {
	url := fmt.Sprintf("/api/users/%s", userID)

	_, err := c.Delete(url)
	if err != nil {
		log.Errorf("delete user %s error: %s", userID, err)
		return err
	}

	return nil
}
