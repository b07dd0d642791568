// internal/models/scheme.go
package models

// SectorAny is the catalog marker for schemes open to every sector.
const SectorAny = "Any"

type Scheme struct {
	Name        string   `json:"name"`
	Sectors     []string `json:"sectors"`
	Stages      []string `json:"stages"`
	Locations   []string `json:"location"`
	Amount      string   `json:"amount"` // support text, e.g. "Up to INR 2 Cr"
	Doc         string   `json:"doc"`
	Eligibility string   `json:"eligibility"`
	Link        string   `json:"link"`
}
