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

package httpclient

import (
	"github.com/go-resty/resty/v2"
)

type RequestFunc func(*resty.Request)

// SetResult registers the destination for the deserialized response body.
// res must be a pointer.
func SetResult(res interface{}) RequestFunc {
	return func(r *resty.Request) {
		r.SetResult(res)
	}
}

func SetBody(body interface{}) RequestFunc {
	return func(r *resty.Request) {
		r.SetBody(body)
	}
}

func SetQueryParam(param, value string) RequestFunc {
	return func(r *resty.Request) {
		r.SetQueryParam(param, value)
	}
}

func SetQueryParams(params map[string]string) RequestFunc {
	return func(r *resty.Request) {
		r.SetQueryParams(params)
	}
}

func SetHeader(header, value string) RequestFunc {
	return func(r *resty.Request) {
		r.SetHeader(header, value)
	}
}

// ForceContentType tells resty to parse the response as the given content
// type regardless of what the server reports.
func ForceContentType(contentType string) RequestFunc {
	return func(r *resty.Request) {
		r.ForceContentType(contentType)
	}
}
