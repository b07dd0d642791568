// internal/engine/rank_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"funding-copilot/internal/models"
)

func seedInvestor() models.Investor {
	return models.Investor{
		Name:        "Test Capital",
		Sectors:     []string{"FinTech"},
		Stages:      []string{"Seed"},
		Ticket:      []float64{5, 15},
		Geo:         []string{"Pan-India"},
		RecencyDays: 45,
	}
}

func TestScoreInvestor_FullMatchAtMidpoint(t *testing.T) {
	profile := models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 10}
	s := ScoreInvestor(profile, seedInvestor())

	assert.Equal(t, 40.0, s.Breakdown.Sector)
	assert.Equal(t, 25.0, s.Breakdown.Stage)
	assert.InDelta(t, 20.0, s.Breakdown.Ticket, 0.01)
	assert.Equal(t, 5.0, s.Breakdown.Geo, "wildcard geo earns half credit")
	assert.Equal(t, 5.0, s.Breakdown.Recency)
	assert.Equal(t, 95, s.Total)
	assert.Equal(t, "Sector 40/40; Stage 25/25; Ticket 20.0/20; Geo 5/10; Recency 5/5.", s.Why)
}

func TestScoreInvestor_TicketDistancePenalty(t *testing.T) {
	// Amount 5 sits a third of the upper bound away from the midpoint 10,
	// so the ticket factor earns roughly two thirds of its maximum.
	profile := models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 5}
	s := ScoreInvestor(profile, seedInvestor())

	assert.InDelta(t, 13.3, s.Breakdown.Ticket, 0.05)
	assert.Equal(t, 88, s.Total)
}

func TestScoreInvestor_MismatchScoresOnlyRecency(t *testing.T) {
	profile := models.Profile{Sector: "Agritech", Stage: "Series C", Location: "Pune", Amount: 1000}

	tests := []struct {
		name        string
		recencyDays int
		expected    int
	}{
		{"recent", 45, 5},
		{"mid", 150, 3},
		{"stale", 400, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := models.Investor{
				Name:        "Mismatch Fund",
				Sectors:     []string{"FinTech"},
				Stages:      []string{"Seed"},
				Ticket:      []float64{5, 15},
				Geo:         []string{"Kolkata"},
				RecencyDays: tt.recencyDays,
			}
			s := ScoreInvestor(profile, inv)
			assert.Equal(t, tt.expected, s.Total, "total must equal the recency component alone")
			assert.Equal(t, 0.0, s.Breakdown.Sector)
			assert.Equal(t, 0.0, s.Breakdown.Stage)
			assert.Equal(t, 0.0, s.Breakdown.Geo)
		})
	}
}

func TestScoreInvestor_LiteralGeoBeatsNothing(t *testing.T) {
	profile := models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Mumbai", Amount: 3}
	inv := seedInvestor()
	inv.Geo = []string{"Mumbai", "Delhi"}
	s := ScoreInvestor(profile, inv)
	assert.Equal(t, 10.0, s.Breakdown.Geo)
}

func TestRankInvestors_OrderAndLength(t *testing.T) {
	profile := models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 5}
	catalog := []models.Investor{
		{Name: "Cold Fund", Sectors: []string{"Consumer"}, Stages: []string{"Series B"}, Ticket: []float64{10, 40}, Geo: []string{"Pune"}, RecencyDays: 300},
		seedInvestor(),
		{Name: "Local Fund", Sectors: []string{"FinTech"}, Stages: []string{"Seed"}, Ticket: []float64{5, 15}, Geo: []string{"Bangalore"}, RecencyDays: 45},
	}

	ranked := RankInvestors(profile, catalog)

	assert.Len(t, ranked, len(catalog))
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Total, ranked[i].Total, "scores must be non-increasing")
	}
	assert.Equal(t, "Local Fund", ranked[0].Investor.Name, "literal geo outranks wildcard")
}

func TestRankInvestors_StableOnTies(t *testing.T) {
	profile := models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 10}
	first := seedInvestor()
	first.Name = "First In Catalog"
	second := seedInvestor()
	second.Name = "Second In Catalog"

	ranked := RankInvestors(profile, []models.Investor{first, second})

	assert.Equal(t, ranked[0].Total, ranked[1].Total)
	assert.Equal(t, "First In Catalog", ranked[0].Investor.Name)
	assert.Equal(t, "Second In Catalog", ranked[1].Investor.Name)
}

func TestRankInvestors_EmptyCatalog(t *testing.T) {
	ranked := RankInvestors(testDefaults(), nil)
	assert.Empty(t, ranked)
}
