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
	"fmt"

	"github.com/feng2740249312/teenmind-guardian/pkg/tool/httpclient"
	"github.com/feng2740249312/teenmind-guardian/pkg/tool/log"
)

// AnalyzeEmotion submits a piece of text for emotion analysis on behalf of
// the given user. The text is passed through verbatim.
func (c *Client) AnalyzeEmotion(text, userID string) (*EmotionResult, error) {
	url := "/api/analysis/emotion"

	resp := &EmotionResult{}
	_, err := c.Post(url,
		httpclient.SetBody(&textAnalysisArgs{Text: text, UserID: userID}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("analyze emotion for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// AnalyzeMusicPsychology evaluates a user's listening history for
// psychological risk signals.
func (c *Client) AnalyzeMusicPsychology(args *MusicAnalysisArgs) (*MusicPsychologyResult, error) {
	url := "/api/analysis/music-psychology"

	resp := &MusicPsychologyResult{}
	_, err := c.Post(url, httpclient.SetBody(args), httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("analyze music psychology for user %s error: %s", args.UserID, err)
		return nil, err
	}

	return resp, nil
}

// DetectAnomaly runs time-series anomaly detection over the user's recent
// behavior window.
func (c *Client) DetectAnomaly(userID string, days int) (*AnomalyResult, error) {
	url := "/api/analysis/anomaly-detection"

	resp := &AnomalyResult{}
	_, err := c.Post(url,
		httpclient.SetBody(&anomalyDetectionArgs{UserID: userID, Days: days}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("detect anomaly for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// AnalyzeResonance inspects which content the user resonates with and flags
// high-risk content clusters.
func (c *Client) AnalyzeResonance(userID string, contentIDs []string) (*ResonanceResult, error) {
	url := "/api/analysis/resonance-network"

	resp := &ResonanceResult{}
	_, err := c.Post(url,
		httpclient.SetBody(&resonanceAnalysisArgs{UserID: userID, ContentIDs: contentIDs}),
		httpclient.SetResult(resp),
	)
	if err != nil {
		log.Errorf("analyze resonance for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// RiskAssessment returns the combined risk evaluation for a user.
func (c *Client) RiskAssessment(userID string) (*RiskAssessmentResult, error) {
	url := fmt.Sprintf("/api/analysis/risk-assessment/%s", userID)

	resp := &RiskAssessmentResult{}
	_, err := c.Get(url, httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("get risk assessment for user %s error: %s", userID, err)
		return nil, err
	}

	return resp, nil
}

// StartBatchAnalysis kicks off an asynchronous analysis run for the given
// users. The backend processes the batch in the background; the returned
// status only acknowledges the submission.
func (c *Client) StartBatchAnalysis(userIDs []string) (*BatchAnalysisStatus, error) {
	url := "/api/analysis/batch-analysis"

	resp := &BatchAnalysisStatus{}
	_, err := c.Post(url, httpclient.SetBody(userIDs), httpclient.SetResult(resp))
	if err != nil {
		log.Errorf("start batch analysis for %d users error: %s", len(userIDs), err)
		return nil, err
	}

	return resp, nil
}
