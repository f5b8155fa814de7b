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
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/httpclient"
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/log"
)

// About returns the backend's self-description.
func (c *Client) About() (*SystemInfo, error) {
	resp := &SystemInfo{}
	_, err := c.Get("/", httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("get system info error: %s", err)
		return nil, err
	}

	return resp, nil
}

// Info returns the backend's module breakdown.
func (c *Client) Info() (*SystemModules, error) {
	resp := &SystemModules{}
	_, err := c.Get("/info", httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("get system modules error: %s", err)
		return nil, err
	}

	return resp, nil
}

// Health reports the backend's health check endpoint.
func (c *Client) Health() (*HealthStatus, error) {
	resp := &HealthStatus{}
	_, err := c.Get("/health", httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("health check error: %s", err)
		return nil, err
	}

	return resp, nil
}
