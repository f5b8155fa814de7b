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
	emotionUserID string
	emotionText   string
)

func init() {
	emotionCmd.Flags().StringVarP(&emotionUserID, "user", "u", "", "user the text belongs to")
	emotionCmd.Flags().StringVarP(&emotionText, "text", "t", "", "text to analyze")
	_ = emotionCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(emotionCmd)
}

var emotionCmd = &cobra.Command{
	Use:   "emotion",
	Short: "run emotion analysis over a piece of text",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := guardian.New().AnalyzeEmotion(emotionText, emotionUserID)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		return nil
	},
}
