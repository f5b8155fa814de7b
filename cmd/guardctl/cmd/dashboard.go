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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feng2740249312/teenmind-guardian/pkg/shared/client/guardian"
)

var (
	dashboardUserID string
	dashboardDays   int
)

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardUserID, "user", "u", "", "user to fetch the dashboard for")
	dashboardCmd.Flags().IntVarP(&dashboardDays, "days", "d", 30, "size of the trailing window in days")
	_ = dashboardCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(dashboardCmd)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "fetch the aggregated dashboard for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := guardian.New().Dashboard(dashboardUserID, dashboardDays)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	},
}
