// internal/workers/matching/filter-schemes/models.go
package filterschemes

import "funding-copilot/internal/models"

type Input struct {
	Profile models.Profile `json:"profile"`

	// Schemes overrides the handler's catalog when present.
	Schemes []models.Scheme `json:"schemes,omitempty"`
}

type Output struct {
	EligibleSchemes []models.Scheme `json:"eligibleSchemes"`
	BestScheme      *models.Scheme  `json:"bestScheme,omitempty"`
}
