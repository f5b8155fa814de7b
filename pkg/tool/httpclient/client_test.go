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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Message string `json:"message"`
}

func TestDefaults(t *testing.T) {
	var gotContentType, gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL))
	assert.Equal(t, 30*time.Second, c.Client.GetClient().Timeout)

	_, err := c.Get("/")
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, UserAgent, gotUserAgent)
}

func TestResultUnwrapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"hello"}`))
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL))

	result := &echo{}
	res, err := c.Get("/", SetResult(result))
	require.NoError(t, err)
	assert.Equal(t, "hello", result.Message)
	assert.Equal(t, http.StatusOK, res.StatusCode())
}

func TestErrorResponse(t *testing.T) {
	body := `{"error":true,"message":"boom","status_code":500}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(body))
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL))

	res, err := c.Get("/")
	require.Error(t, err)
	assert.Nil(t, res)

	reqErr := &Error{}
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.Code)
	assert.Equal(t, StatusReasonInternalError, reqErr.ErrStatus)
	// the server body must survive untouched
	assert.Equal(t, body, reqErr.Detail)
}

func TestTransportErrorPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := New(SetHostURL(server.URL))

	res, err := c.Get("/")
	require.Error(t, err)
	assert.Nil(t, res)

	// a connection failure is not a server error
	reqErr := &Error{}
	assert.False(t, errors.As(err, &reqErr))
}

func TestTimeoutErrorPassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL), SetTimeout(20*time.Millisecond))

	res, err := c.Get("/")
	require.Error(t, err)
	assert.Nil(t, res)

	// a deadline expiry comes from the transport, not from the server
	reqErr := &Error{}
	assert.False(t, errors.As(err, &reqErr))
}

func TestIgnoreCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL), SetIgnoreCodes(http.StatusNotFound))

	res, err := c.Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode())
}

func TestBaseURIComposition(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL), SetBaseURI("/api/users"))

	_, err := c.Get("/42")
	require.NoError(t, err)
	assert.Equal(t, "/api/users/42", gotPath)
}

func TestQueryParams(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
	}))
	defer server.Close()

	c := New(SetHostURL(server.URL))

	_, err := c.Get("/", SetQueryParam("days", "7"))
	require.NoError(t, err)
	assert.Equal(t, "days=7", gotQuery)
}

func TestStatusReasonMapping(t *testing.T) {
	assert.Equal(t, StatusReasonNotFound, NewGenericServerResponse(http.StatusNotFound, http.MethodGet, "").ErrStatus)
	assert.Equal(t, StatusReasonAlreadyExists, NewGenericServerResponse(http.StatusConflict, http.MethodPost, "").ErrStatus)
	assert.Equal(t, StatusReasonConflict, NewGenericServerResponse(http.StatusConflict, http.MethodPut, "").ErrStatus)
	assert.Equal(t, StatusReasonInvalid, NewGenericServerResponse(http.StatusUnprocessableEntity, http.MethodPost, "").ErrStatus)
	assert.Equal(t, StatusReasonUnknown, NewGenericServerResponse(http.StatusTeapot, http.MethodGet, "").ErrStatus)

	assert.True(t, IsNotFound(NewGenericServerResponse(http.StatusNotFound, http.MethodGet, "")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
