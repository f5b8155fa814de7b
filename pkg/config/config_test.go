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

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/feng2740249312/teenmind-guardian/pkg/setting"
)

func TestAPIServerAddressDefault(t *testing.T) {
	viper.Reset()

	assert.Equal(t, "http://localhost:8000", APIServerAddress())
}

func TestAPIServerAddressOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set(setting.ENVAPIServerAddress, "http://guardian.example.com:9000")
	assert.Equal(t, "http://guardian.example.com:9000", APIServerAddress())
}

func TestRequestTimeoutIsFixed(t *testing.T) {
	assert.Equal(t, 30*time.Second, RequestTimeout())
}

func TestModeDefault(t *testing.T) {
	viper.Reset()

	assert.Equal(t, setting.DebugMode, Mode())
}
