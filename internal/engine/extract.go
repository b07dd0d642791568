// internal/engine/extract.go
package engine

import (
	"regexp"
	"strconv"
	"strings"

	"funding-copilot/internal/models"
)

// vocabTerm maps a lowercase search term to its canonical catalog label.
type vocabTerm struct {
	term  string
	label string
}

// Vocabulary order is the tie-break rule on ambiguous text: the first term
// found as a substring wins, regardless of its position in the text.
// Reordering these lists changes extraction results.
var (
	sectorVocab = []vocabTerm{
		{"fintech", "FinTech"},
		{"edtech", "EdTech"},
		{"healthtech", "HealthTech"},
		{"saas", "SaaS"},
	}
	stageVocab = []vocabTerm{
		{"seed", "Seed"},
		{"series a", "Series A"},
		{"series b", "Series B"},
	}
	cityVocab = []vocabTerm{
		{"bangalore", "Bangalore"},
		{"mumbai", "Mumbai"},
		{"delhi", "Delhi"},
		{"chennai", "Chennai"},
	}
)

var amountPattern = regexp.MustCompile(`(\d+\.?\d*)\s*(cr|crore|crores)`)

func scanVocab(lower string, vocab []vocabTerm) (string, bool) {
	for _, v := range vocab {
		if strings.Contains(lower, v.term) {
			return v.label, true
		}
	}
	return "", false
}

// ExtractProfile derives a Profile from raw text. Each attribute is scanned
// independently against its vocabulary and falls back to the caller-supplied
// default when no term is found; partial matches are never merged across
// attributes. The amount is the first "<number> cr|crore|crores" match.
func ExtractProfile(text string, defaults models.Profile) models.Profile {
	lower := strings.ToLower(text)
	profile := defaults

	if label, ok := scanVocab(lower, sectorVocab); ok {
		profile.Sector = label
	}
	if label, ok := scanVocab(lower, stageVocab); ok {
		profile.Stage = label
	}
	if label, ok := scanVocab(lower, cityVocab); ok {
		profile.Location = label
	}
	if m := amountPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			profile.Amount = v
		}
	}

	return profile
}
