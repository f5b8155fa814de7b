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
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbout(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"project":"TeenMind-Guardian","version":"1.0.0","status":"running"}`)

	info, err := c.About()
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/", rec.path)
	assert.Equal(t, "TeenMind-Guardian", info.Project)
	assert.Equal(t, "running", info.Status)
}

func TestInfo(t *testing.T) {
	body := `{
		"system": "TeenMind-Guardian",
		"modules": {"data_collection": "netease, qzone, douban, weibo", "ai_analysis": "emotion, music, anomaly, resonance"},
		"innovation": ["music data for mental health detection", "resonance network analysis"]
	}`
	c, rec := newTestClient(t, http.StatusOK, body)

	info, err := c.Info()
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/info", rec.path)
	assert.Equal(t, "TeenMind-Guardian", info.System)
	assert.Equal(t, "netease, qzone, douban, weibo", info.Modules["data_collection"])
	assert.Len(t, info.Innovation, 2)
}

func TestHealth(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"status":"healthy","database":"connected","redis":"connected","mongodb":"connected"}`)

	status, err := c.Health()
	require.NoError(t, err)

	assert.Equal(t, "/health", rec.path)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "connected", status.MongoDB)
}
