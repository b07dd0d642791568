// internal/engine/schemes.go
package engine

import "funding-copilot/internal/models"

// SchemeEligible reports whether a profile satisfies all three of a
// scheme's compatibility rules: sector (wildcard "Any" or literal), stage
// (always literal), and location (wildcard "Pan-India" or literal).
func SchemeEligible(profile models.Profile, s models.Scheme) bool {
	sectorOK := containsLabel(s.Sectors, models.SectorAny) || containsLabel(s.Sectors, profile.Sector)
	stageOK := containsLabel(s.Stages, profile.Stage)
	locationOK := containsLabel(s.Locations, models.GeoAnywhere) || containsLabel(s.Locations, profile.Location)
	return sectorOK && stageOK && locationOK
}

// FilterSchemes returns the eligible schemes in catalog order. It is a pure
// filter with no scoring; callers slice top-K.
func FilterSchemes(profile models.Profile, schemes []models.Scheme) []models.Scheme {
	eligible := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if SchemeEligible(profile, s) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}
