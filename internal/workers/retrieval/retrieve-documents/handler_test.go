// internal/workers/retrieval/retrieve-documents/handler_test.go
package retrievedocuments

import (
	"context"
	"testing"

	"funding-copilot/internal/catalog"
	"funding-copilot/internal/common/logger"
	"funding-copilot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T, documents []models.Document) *Handler {
	return NewHandler(LoadConfig(), documents, logger.NewTestLogger(t))
}

func TestHandler_Execute_DefaultTopK(t *testing.T) {
	h := createTestHandler(t, catalog.Default().Documents)

	output, err := h.Execute(context.Background(), &Input{
		Query: "FinTech seed funding Bangalore",
	})
	require.NoError(t, err)
	require.Len(t, output.Documents, 3)

	for i := 1; i < len(output.Documents); i++ {
		assert.GreaterOrEqual(t,
			output.Documents[i-1].Similarity,
			output.Documents[i].Similarity,
			"similarities must be non-increasing")
	}
	assert.Greater(t, output.Documents[0].Similarity, 0.0)
}

func TestHandler_Execute_ExplicitTopK(t *testing.T) {
	h := createTestHandler(t, catalog.Default().Documents)

	output, err := h.Execute(context.Background(), &Input{
		Query: "FinTech seed funding",
		TopK:  5,
	})
	require.NoError(t, err)
	assert.Len(t, output.Documents, 5)
}

func TestHandler_Execute_TopKBeyondCorpus(t *testing.T) {
	h := createTestHandler(t, catalog.Default().Documents)

	output, err := h.Execute(context.Background(), &Input{
		Query: "FinTech",
		TopK:  100,
	})
	require.NoError(t, err)
	assert.Len(t, output.Documents, len(catalog.Default().Documents))
}

func TestHandler_Execute_InputCorpusOverridesHandler(t *testing.T) {
	h := createTestHandler(t, catalog.Default().Documents)

	corpus := []models.Document{
		{ID: "a", Title: "A", Text: "fintech seed funding"},
		{ID: "b", Title: "B", Text: "unrelated gardening tips"},
	}

	output, err := h.Execute(context.Background(), &Input{
		Query:     "fintech seed",
		TopK:      1,
		Documents: corpus,
	})
	require.NoError(t, err)
	require.Len(t, output.Documents, 1)
	assert.Equal(t, "a", output.Documents[0].Document.ID)
}

func TestHandler_Execute_NoCorpusAnywhere(t *testing.T) {
	h := createTestHandler(t, nil)

	_, err := h.Execute(context.Background(), &Input{Query: "fintech"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCorpus)
}
