// internal/models/analysis.go
package models

// Confidence labels derived from the best investor's total score.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// AnalysisResult is the terminal output of one query analysis. It is
// immutable once composed; the presentation layer renders it as-is.
type AnalysisResult struct {
	Profile        Profile             `json:"profile"`
	BestInvestor   *ScoredInvestor     `json:"bestInvestor,omitempty"`
	BestScheme     *Scheme             `json:"bestScheme,omitempty"`
	Documents      []RetrievedDocument `json:"documents"`
	Language       Detection           `json:"language"`
	Confidence     string              `json:"confidence"`
	ConfidenceDots int                 `json:"confidenceDots"` // active dots out of 6
	Summary        string              `json:"summary"`
	AnswerText     string              `json:"answerText"`
}
