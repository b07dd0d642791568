// internal/workers/answer/compose-answer/models.go
package composeanswer

import "funding-copilot/internal/models"

type Input struct {
	Query string `json:"query"`

	// Profile, when present, skips extraction and is used verbatim.
	Profile *models.Profile `json:"profile,omitempty"`
}

type Output struct {
	AnalysisID string                `json:"analysisId"`
	Result     models.AnalysisResult `json:"result"`
	Cached     bool                  `json:"cached"`
}
