// internal/engine/retrieve.go
package engine

import (
	"math"
	"sort"

	"funding-copilot/internal/models"
)

// RetrieveDocuments ranks the corpus against the query by cosine similarity
// and returns the top k with similarity rounded to two decimals. The sort
// runs on the unrounded scores and is stable, so ties keep catalog order.
// Zero-similarity documents are still returned when k exceeds the number of
// non-zero matches; sparse overlap degrades to low scores, never an error.
func RetrieveDocuments(query string, documents []models.Document, k int) []models.RetrievedDocument {
	qVec := ToVector(query)

	type scoredDoc struct {
		doc models.Document
		raw float64
	}
	scored := make([]scoredDoc, 0, len(documents))
	for _, d := range documents {
		scored = append(scored, scoredDoc{doc: d, raw: Cosine(qVec, ToVector(d.Text))})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].raw > scored[j].raw
	})

	if k < 0 {
		k = 0
	}
	if k > len(scored) {
		k = len(scored)
	}

	out := make([]models.RetrievedDocument, 0, k)
	for _, s := range scored[:k] {
		out = append(out, models.RetrievedDocument{
			Document:   s.doc,
			Similarity: math.Round(s.raw*100) / 100,
		})
	}
	return out
}
