// internal/engine/vector_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToVector(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected map[string]int
	}{
		{
			name:     "simple counts",
			text:     "seed funding seed",
			expected: map[string]int{"seed": 2, "funding": 1},
		},
		{
			name:     "punctuation and case stripped",
			text:     "FinTech, Seed! (Bangalore)",
			expected: map[string]int{"fintech": 1, "seed": 1, "bangalore": 1},
		},
		{
			name:     "digits survive",
			text:     "5 Cr in 2024",
			expected: map[string]int{"5": 1, "cr": 1, "in": 1, "2024": 1},
		},
		{
			name:     "empty input",
			text:     "",
			expected: map[string]int{},
		},
		{
			name:     "non-latin script normalizes to empty",
			text:     "मुझे फिनटेक स्टार्टअप के लिए सीड फंडिंग चाहिए",
			expected: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToVector(tt.text))
		})
	}
}

func TestCosine_SelfSimilarityIsOne(t *testing.T) {
	texts := []string{
		"Sequoia closed 12 FinTech seed deals in 2024",
		"need seed funding",
		"a b c a b a",
	}
	for _, text := range texts {
		v := ToVector(text)
		assert.InDelta(t, 1.0, Cosine(v, v), 1e-9, "self-similarity for %q", text)
	}
}

func TestCosine_ZeroMagnitudePolicy(t *testing.T) {
	empty := ToVector("")
	some := ToVector("seed funding")

	assert.Equal(t, 0.0, Cosine(empty, some))
	assert.Equal(t, 0.0, Cosine(some, empty))
	assert.Equal(t, 0.0, Cosine(empty, empty))
}

func TestCosine_DisjointVectors(t *testing.T) {
	a := ToVector("fintech seed bangalore")
	b := ToVector("healthcare hospitals pune")
	assert.Equal(t, 0.0, Cosine(a, b))
}

func TestCosine_PartialOverlap(t *testing.T) {
	a := ToVector("seed funding fintech")
	b := ToVector("seed rounds dominate")
	sim := Cosine(a, b)
	assert.Greater(t, sim, 0.0)
	assert.Less(t, sim, 1.0)
}
