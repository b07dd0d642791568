// internal/engine/compose_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funding-copilot/internal/models"
)

func composeFixtures() ([]models.Investor, []models.Scheme, []models.Document) {
	investors := []models.Investor{
		seedInvestor(),
		{Name: "Cold Fund", Sectors: []string{"Consumer"}, Stages: []string{"Series B"}, Ticket: []float64{10, 40}, Geo: []string{"Pune"}, RecencyDays: 300},
	}
	return investors, schemeCatalog(), documentCorpus()
}

func TestComposeAnswer_FullPipeline(t *testing.T) {
	investors, schemes, documents := composeFixtures()
	defaults := testDefaults()

	result := ComposeAnswer("Need seed funding for my FinTech startup in Bangalore, 10 cr", defaults, investors, schemes, documents)

	assert.Equal(t, "FinTech", result.Profile.Sector)
	assert.Equal(t, "Seed", result.Profile.Stage)
	assert.Equal(t, "Bangalore", result.Profile.Location)
	assert.Equal(t, 10.0, result.Profile.Amount)

	require.NotNil(t, result.BestInvestor)
	assert.Equal(t, "Test Capital", result.BestInvestor.Investor.Name)
	assert.Equal(t, 95, result.BestInvestor.Total)

	require.NotNil(t, result.BestScheme)
	assert.Equal(t, "National Seed Fund", result.BestScheme.Name)

	assert.Len(t, result.Documents, 3)
	assert.Equal(t, "English", result.Language.Lang)
	assert.Equal(t, models.ConfidenceHigh, result.Confidence)
	assert.Equal(t, 6, result.ConfidenceDots)
	assert.Contains(t, result.Summary, "Best fit: Test Capital (95%)")
	assert.Contains(t, result.AnswerText, "Investor: Test Capital")
}

func TestComposeAnswer_ConfidenceBands(t *testing.T) {
	tests := []struct {
		score int
		label string
		dots  int
	}{
		{95, models.ConfidenceHigh, 6},
		{80, models.ConfidenceHigh, 6},
		{79, models.ConfidenceMedium, 4},
		{60, models.ConfidenceMedium, 4},
		{59, models.ConfidenceLow, 2},
		{0, models.ConfidenceLow, 2},
	}
	for _, tt := range tests {
		label, dots := ConfidenceFor(tt.score)
		assert.Equal(t, tt.label, label, "score %d", tt.score)
		assert.Equal(t, tt.dots, dots, "score %d", tt.score)
	}
}

func TestComposeAnswer_EmptyCatalogsDegradeToSentinels(t *testing.T) {
	result := ComposeAnswer("seed fintech bangalore", testDefaults(), nil, nil, nil)

	assert.Nil(t, result.BestInvestor)
	assert.Nil(t, result.BestScheme)
	assert.Empty(t, result.Documents)
	assert.Equal(t, models.ConfidenceLow, result.Confidence)
	assert.Contains(t, result.Summary, "Best fit: N/A (0%)")
	assert.Contains(t, result.Summary, "Eligible scheme: None")
}

func TestComposeAnswer_Deterministic(t *testing.T) {
	investors, schemes, documents := composeFixtures()
	defaults := testDefaults()
	query := "Need pre-seed edtech capital in Mumbai"

	first := ComposeAnswer(query, defaults, investors, schemes, documents)
	second := ComposeAnswer(query, defaults, investors, schemes, documents)

	assert.Equal(t, first, second)
}

func TestComposeAnswerForProfile_SkipsExtraction(t *testing.T) {
	investors, schemes, documents := composeFixtures()
	profile := models.Profile{Sector: "Consumer", Stage: "Series B", Location: "Pune", Amount: 25}

	// Query text mentions FinTech/Seed, but the override profile wins.
	result := ComposeAnswerForProfile("fintech seed bangalore", profile, investors, schemes, documents)

	assert.Equal(t, profile, result.Profile)
	require.NotNil(t, result.BestInvestor)
	assert.Equal(t, "Cold Fund", result.BestInvestor.Investor.Name)
}

func TestComposeAnswer_DoesNotMutateCatalogs(t *testing.T) {
	investors, schemes, documents := composeFixtures()
	wantName := investors[0].Name
	wantSectors := strings.Join(investors[0].Sectors, ",")

	_ = ComposeAnswer("fintech seed 5 cr", testDefaults(), investors, schemes, documents)

	assert.Equal(t, wantName, investors[0].Name)
	assert.Equal(t, wantSectors, strings.Join(investors[0].Sectors, ","))
}
