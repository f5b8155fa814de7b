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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/feng2740249312/teenmind-guardian/pkg/config"
	"github.com/feng2740249312/teenmind-guardian/pkg/setting"
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/log"
)

var rootCmd = &cobra.Command{
	Use:   "guardctl",
	Short: "A command line client for the TeenMind Guardian backend",
	Long:  `guardctl issues requests against the TeenMind Guardian backend, covering dashboard retrieval, emotion analysis and service health.`,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("address", "a", "", "address of the Guardian backend")

	_ = viper.BindPFlag(setting.ENVAPIServerAddress, rootCmd.PersistentFlags().Lookup("address"))
}

func initConfig() {
	viper.AutomaticEnv()

	log.Init(&log.Config{
		Level:       config.LogLevel(),
		Filename:    config.LogFile(),
		SendToFile:  config.SendLogToFile(),
		Development: config.Mode() != setting.ReleaseMode,
		NoCaller:    true,
	})
}
