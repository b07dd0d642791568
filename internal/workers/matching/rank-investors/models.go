// internal/workers/matching/rank-investors/models.go
package rankinvestors

import "funding-copilot/internal/models"

type Input struct {
	Profile models.Profile `json:"profile"`

	// Investors overrides the handler's catalog when present, which lets
	// a process instance rank against an ad hoc shortlist.
	Investors []models.Investor `json:"investors,omitempty"`
}

type Output struct {
	RankedInvestors []models.ScoredInvestor `json:"rankedInvestors"`
	BestInvestor    *models.ScoredInvestor  `json:"bestInvestor,omitempty"`
}
