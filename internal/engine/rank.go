// internal/engine/rank.go
package engine

import (
	"fmt"
	"math"
	"sort"

	"funding-copilot/internal/models"
)

// Factor maxima of the fit rubric. The five factors are independent and
// additive; a full mismatch on sector/stage/geo leaves only the recency
// component.
const (
	sectorMax  = 40.0
	stageMax   = 25.0
	ticketMax  = 20.0
	geoMax     = 10.0
	recencyMax = 5.0

	// ticketEpsilon keeps the ticket overlap defined for a zero upper bound.
	ticketEpsilon = 0.0001
)

func containsLabel(set []string, label string) bool {
	for _, s := range set {
		if s == label {
			return true
		}
	}
	return false
}

// ScoreInvestor computes the deterministic five-factor fit score of one
// investor against a profile and explains each factor's contribution.
func ScoreInvestor(profile models.Profile, inv models.Investor) models.ScoredInvestor {
	var b models.ScoreBreakdown

	if containsLabel(inv.Sectors, profile.Sector) {
		b.Sector = sectorMax
	}
	if containsLabel(inv.Stages, profile.Stage) {
		b.Stage = stageMax
	}

	mid := (inv.TicketMin() + inv.TicketMax()) / 2
	overlap := math.Max(0, 1-math.Abs(mid-profile.Amount)/(inv.TicketMax()+ticketEpsilon))
	b.Ticket = math.Min(1, overlap) * ticketMax

	// Wildcard geo is checked before a literal match; the two are mutually
	// exclusive and a wildcard investor earns half the geo points.
	switch {
	case containsLabel(inv.Geo, models.GeoAnywhere):
		b.Geo = geoMax / 2
	case containsLabel(inv.Geo, profile.Location):
		b.Geo = geoMax
	}

	switch {
	case inv.RecencyDays <= 90:
		b.Recency = 5
	case inv.RecencyDays <= 180:
		b.Recency = 3
	default:
		b.Recency = 1
	}

	total := int(math.Round(b.Sector + b.Stage + b.Ticket + b.Geo + b.Recency))
	why := fmt.Sprintf("Sector %.0f/40; Stage %.0f/25; Ticket %.1f/20; Geo %.0f/10; Recency %.0f/5.",
		b.Sector, b.Stage, b.Ticket, b.Geo, b.Recency)

	return models.ScoredInvestor{Investor: inv, Total: total, Breakdown: b, Why: why}
}

// RankInvestors scores every catalog investor against the profile and
// returns the full list sorted by descending total. The sort is stable so
// ties keep catalog order; callers slice top-K. The catalog is never
// mutated.
func RankInvestors(profile models.Profile, investors []models.Investor) []models.ScoredInvestor {
	scored := make([]models.ScoredInvestor, 0, len(investors))
	for _, inv := range investors {
		scored = append(scored, ScoreInvestor(profile, inv))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Total > scored[j].Total
	})
	return scored
}
