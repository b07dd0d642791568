// internal/engine/retrieve_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"funding-copilot/internal/models"
)

func documentCorpus() []models.Document {
	return []models.Document{
		{ID: "d1", Title: "FinTech deals", Text: "Sequoia closed 12 FinTech seed deals with ticket sizes INR 5-15 Cr."},
		{ID: "d2", Title: "SaaS snapshot", Text: "Bangalore seed rounds dominate with strong SaaS overlap."},
		{ID: "d3", Title: "Policy PDF", Text: "Eligibility: DPIIT recognized, incorporated under 2 years."},
	}
}

func TestRetrieveDocuments_RanksByOverlap(t *testing.T) {
	out := RetrieveDocuments("FinTech seed deals", documentCorpus(), 3)

	assert.Len(t, out, 3)
	assert.Equal(t, "d1", out[0].Document.ID)
	for i := 1; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i-1].Similarity, out[i].Similarity)
	}
}

func TestRetrieveDocuments_ZeroOverlapKeepsCatalogOrder(t *testing.T) {
	out := RetrieveDocuments("quantum blockchain llamas", documentCorpus(), 2)

	assert.Len(t, out, 2, "truncated to k even when every score is zero")
	assert.Equal(t, "d1", out[0].Document.ID)
	assert.Equal(t, "d2", out[1].Document.ID)
	for _, d := range out {
		assert.Equal(t, 0.0, d.Similarity)
	}
}

func TestRetrieveDocuments_NonLatinQueryScoresZero(t *testing.T) {
	out := RetrieveDocuments("मुझे फिनटेक स्टार्टअप के लिए सीड फंडिंग चाहिए", documentCorpus(), 3)
	for _, d := range out {
		assert.Equal(t, 0.0, d.Similarity)
	}
}

func TestRetrieveDocuments_KBounds(t *testing.T) {
	corpus := documentCorpus()

	assert.Len(t, RetrieveDocuments("seed", corpus, 10), len(corpus), "k larger than corpus returns everything")
	assert.Empty(t, RetrieveDocuments("seed", corpus, 0))
	assert.Empty(t, RetrieveDocuments("seed", corpus, -1))
	assert.Empty(t, RetrieveDocuments("seed", nil, 3))
}

func TestRetrieveDocuments_SimilarityRoundedToTwoDecimals(t *testing.T) {
	out := RetrieveDocuments("FinTech seed deals", documentCorpus(), 3)
	for _, d := range out {
		rounded := float64(int(d.Similarity*100+0.5)) / 100
		assert.InDelta(t, rounded, d.Similarity, 1e-9)
	}
}
