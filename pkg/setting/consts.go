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

package setting

import "time"

const ProductName = "teenmind-guardian"

// envs
const (
	// ENVAPIServerAddress is the fully qualified address of the Guardian
	// backend, for example http://guardian.example.com or http://1.2.3.4:8000.
	ENVAPIServerAddress = "ADDRESS"

	ENVMode     = "MODE"
	ENVLogLevel = "LOG_LEVEL"
)

const (
	DebugMode   = "debug"
	ReleaseMode = "release"
)

// backend defaults
const (
	// DefaultAPIServerAddress is used when no address override is provided.
	DefaultAPIServerAddress = "http://localhost:8000"

	// RequestTimeout applies to every request issued through the shared
	// client. The backend does not support long polling, so this is fixed.
	RequestTimeout = 30 * time.Second
)
