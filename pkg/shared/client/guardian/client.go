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
	"github.com/feng2740249312/teenmind-guardian/pkg/config"
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/httpclient"
)

// Client is a typed facade over the Guardian backend REST API. It is safe
// for concurrent use: the underlying configuration is immutable after New.
type Client struct {
	*httpclient.Client

	host string
}

// New returns a client bound to the configured backend address. Additional
// client options are applied after the host, so callers may override any
// default except the response handling.
func New(cfs ...httpclient.ClientFunc) *Client {
	host := config.APIServerAddress()

	c := httpclient.New(
		append([]httpclient.ClientFunc{httpclient.SetHostURL(host)}, cfs...)...,
	)

	return &Client{
		Client: c,
		host:   host,
	}
}

// NewFromHost is like New but targets an explicit backend address,
// bypassing the configuration lookup.
func NewFromHost(host string, cfs ...httpclient.ClientFunc) *Client {
	c := httpclient.New(
		append([]httpclient.ClientFunc{httpclient.SetHostURL(host)}, cfs...)...,
	)

	return &Client{
		Client: c,
		host:   host,
	}
}

// Host returns the backend address this client is bound to.
func (c *Client) Host() string {
	return c.host
}
