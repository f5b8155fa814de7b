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

// EmotionTrendPoint is one sample of the per-user emotion trend series.
type EmotionTrendPoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// DashboardData aggregates everything the backend renders on the per-user
// dashboard. The field shapes are owned by the backend; the client passes
// them through as-is.
type DashboardData struct {
	UserID            string              `json:"user_id"`
	Period            string              `json:"period"`
	EmotionTrend      []EmotionTrendPoint `json:"emotion_trend"`
	MusicPreference   map[string]int      `json:"music_preference"`
	ActivityHeatmap   map[string]int      `json:"activity_heatmap"`
	RiskRadar         map[string]int      `json:"risk_radar"`
	SocialInteraction map[string]int      `json:"social_interaction"`
	OverallRiskScore  int                 `json:"overall_risk_score"`
	RiskLevel         string              `json:"risk_level"`
}

type textAnalysisArgs struct {
	Text   string `json:"text"`
	UserID string `json:"user_id,omitempty"`
}

// EmotionResult is the outcome of a single text emotion analysis.
type EmotionResult struct {
	Emotion        string             `json:"emotion"`
	Confidence     float64            `json:"confidence"`
	EmotionsDetail map[string]float64 `json:"emotions_detail"`
	RiskLevel      string             `json:"risk_level"`
	Timestamp      string             `json:"timestamp"`
}

type UserRegistration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type User struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	CreatedAt         string `json:"created_at"`
	MonitoringEnabled bool   `json:"monitoring_enabled"`
}

type loginArgs struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        LoginUser `json:"user"`
}

// UserPatch carries a partial user update. Nil fields are left unchanged
// by the backend.
type UserPatch struct {
	Email               *string `json:"email,omitempty"`
	MonitoringEnabled   *bool   `json:"monitoring_enabled,omitempty"`
	MonitoringFrequency *int    `json:"monitoring_frequency,omitempty"`
}

type UpdateResult struct {
	Message       string   `json:"message"`
	UpdatedFields []string `json:"updated_fields"`
}

type MusicAnalysisArgs struct {
	UserID         string   `json:"user_id"`
	SongIDs        []string `json:"song_ids"`
	ListeningTimes []string `json:"listening_times"`
}

type MusicPsychologyResult struct {
	OverallValence         float64  `json:"overall_valence"`
	SleepPatternRisk       bool     `json:"sleep_pattern_risk"`
	FavoriteGenreSentiment string   `json:"favorite_genre_sentiment"`
	Recommendations        []string `json:"recommendations"`
}

type anomalyDetectionArgs struct {
	UserID string `json:"user_id"`
	Days   int    `json:"days"`
}

type AnomalyResult struct {
	IsAnomaly    bool     `json:"is_anomaly"`
	AnomalyScore float64  `json:"anomaly_score"`
	RiskFactors  []string `json:"risk_factors"`
	Suggestion   string   `json:"suggestion"`
}

type resonanceAnalysisArgs struct {
	UserID     string   `json:"user_id"`
	ContentIDs []string `json:"content_ids"`
}

type ResonanceResult struct {
	ResonanceScore     float64  `json:"resonance_score"`
	HighRiskContent    []string `json:"high_risk_content"`
	UserClusters       []int    `json:"user_clusters"`
	InterventionNeeded bool     `json:"intervention_needed"`
}

type RiskDetails struct {
	EmotionRisk   float64 `json:"emotion_risk"`
	MusicRisk     float64 `json:"music_risk"`
	AnomalyRisk   float64 `json:"anomaly_risk"`
	ResonanceRisk float64 `json:"resonance_risk"`
}

type RiskAssessmentResult struct {
	UserID            string      `json:"user_id"`
	RiskScore         float64     `json:"risk_score"`
	RiskLevel         string      `json:"risk_level"`
	RecommendedAction string      `json:"recommended_action"`
	Details           RiskDetails `json:"details"`
	Timestamp         string      `json:"timestamp"`
}

type BatchAnalysisStatus struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type neteaseCrawlArgs struct {
	UserID     string `json:"user_id"`
	NeteaseUID string `json:"netease_uid"`
	Days       int    `json:"days"`
}

type qzoneCrawlArgs struct {
	UserID   string `json:"user_id"`
	QQNumber string `json:"qq_number"`
	Days     int    `json:"days"`
}

type doubanCrawlArgs struct {
	UserID    string   `json:"user_id"`
	DoubanUID string   `json:"douban_uid"`
	Groups    []string `json:"groups,omitempty"`
}

type weiboCrawlArgs struct {
	UserID   string   `json:"user_id"`
	WeiboUID string   `json:"weibo_uid"`
	Keywords []string `json:"keywords,omitempty"`
}

// CrawlTaskStatus acknowledges that a collection task was accepted; the
// task itself runs in the backend's background workers.
type CrawlTaskStatus struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Status  string `json:"status"`
}

type SourceCrawlStatus struct {
	Status     string  `json:"status"`
	Records    int     `json:"records"`
	LastUpdate *string `json:"last_update"`
}

type CrawlStatus struct {
	UserID  string            `json:"user_id"`
	Netease SourceCrawlStatus `json:"netease"`
	Qzone   SourceCrawlStatus `json:"qzone"`
	Douban  SourceCrawlStatus `json:"douban"`
	Weibo   SourceCrawlStatus `json:"weibo"`
}

type SystemInfo struct {
	Project     string   `json:"project"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Status      string   `json:"status"`
	Author      string   `json:"author"`
	Features    []string `json:"features"`
	Docs        string   `json:"docs"`
}

type SystemModules struct {
	System     string            `json:"system"`
	Modules    map[string]string `json:"modules"`
	Innovation []string          `json:"innovation"`
}

type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	MongoDB  string `json:"mongodb"`
}
