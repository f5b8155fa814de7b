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
	"time"

	"github.com/spf13/viper"

	"github.com/feng2740249312/teenmind-guardian/pkg/setting"
)

// APIServerAddress is the address of the Guardian backend, or an IP Address.
// Port and protocol are required if necessary.
// for example: https://guardian.example.com, http://1.2.3.4:8000
func APIServerAddress() string {
	address := viper.GetString(setting.ENVAPIServerAddress)
	if address == "" {
		return setting.DefaultAPIServerAddress
	}

	return address
}

// RequestTimeout is the client-wide timeout for every backend request.
func RequestTimeout() time.Duration {
	return setting.RequestTimeout
}

func Mode() string {
	mode := viper.GetString(setting.ENVMode)
	if mode == "" {
		return setting.DebugMode
	}

	return mode
}

func LogLevel() string {
	level := viper.GetString(setting.ENVLogLevel)
	if level == "" {
		return "debug"
	}

	return level
}

func SendLogToFile() bool {
	return false
}

func LogPath() string {
	return "/var/log/" + setting.ProductName + "/"
}

func LogName() string {
	return "guardian.log"
}

func LogFile() string {
	return LogPath() + LogName()
}
