// internal/engine/vector.go
package engine

import (
	"math"
	"strings"
)

// normalize lowercases text and maps every rune outside [a-z0-9] and
// whitespace to a space. Non-Latin scripts therefore normalize to an empty
// token stream; retrieval degrades to zero similarity for such queries and
// DetectLanguage is the upstream signal a workflow can branch on instead.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// ToVector turns raw text into a term-frequency map. Empty input yields an
// empty map; there is no error path.
func ToVector(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range strings.Fields(normalize(text)) {
		freq[tok]++
	}
	return freq
}

// Cosine returns the cosine similarity between two term-frequency maps.
// If either vector has zero magnitude the similarity is defined as 0; that
// is a boundary policy, not an error.
func Cosine(a, b map[string]int) float64 {
	var dot, aMag, bMag float64
	for k, va := range a {
		aMag += float64(va) * float64(va)
		if vb, ok := b[k]; ok {
			dot += float64(va) * float64(vb)
		}
	}
	for _, vb := range b {
		bMag += float64(vb) * float64(vb)
	}
	if aMag == 0 || bMag == 0 {
		return 0
	}
	return dot / (math.Sqrt(aMag) * math.Sqrt(bMag))
}
