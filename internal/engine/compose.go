// internal/engine/compose.go
package engine

import (
	"fmt"

	"funding-copilot/internal/models"
)

// RetrievalK is the number of supporting documents a composed answer cites.
const RetrievalK = 3

// ConfidenceFor maps the best investor's total score to a confidence label
// and its visual weight out of six dots.
func ConfidenceFor(score int) (string, int) {
	switch {
	case score >= 80:
		return models.ConfidenceHigh, 6
	case score >= 60:
		return models.ConfidenceMedium, 4
	default:
		return models.ConfidenceLow, 2
	}
}

// ComposeAnswer extracts a Profile from the query text (falling back to the
// caller-supplied defaults per attribute) and assembles the full analysis.
func ComposeAnswer(text string, defaults models.Profile, investors []models.Investor, schemes []models.Scheme, documents []models.Document) models.AnalysisResult {
	profile := ExtractProfile(text, defaults)
	return ComposeAnswerForProfile(text, profile, investors, schemes, documents)
}

// ComposeAnswerForProfile is the caller-override path: the profile is used
// as given and no extraction runs. The function is pure; composing the same
// inputs twice yields identical results.
func ComposeAnswerForProfile(text string, profile models.Profile, investors []models.Investor, schemes []models.Scheme, documents []models.Document) models.AnalysisResult {
	detected := DetectLanguage(text)
	ranked := RankInvestors(profile, investors)
	eligible := FilterSchemes(profile, schemes)
	docs := RetrieveDocuments(text, documents, RetrievalK)

	result := models.AnalysisResult{
		Profile:   profile,
		Documents: docs,
		Language:  detected,
	}

	investorName, why := "N/A", ""
	var topScore int
	if len(ranked) > 0 {
		best := ranked[0]
		result.BestInvestor = &best
		investorName = best.Investor.Name
		why = best.Why
		topScore = best.Total
	}

	schemeName, eligibility := "None", "N/A"
	if len(eligible) > 0 {
		best := eligible[0]
		result.BestScheme = &best
		schemeName = best.Name
		eligibility = best.Eligibility
	}

	result.Confidence, result.ConfidenceDots = ConfidenceFor(topScore)
	result.Summary = fmt.Sprintf("Top investors for %s at %s in %s. Best fit: %s (%d%%). Eligible scheme: %s. Responding in %s.",
		profile.Sector, profile.Stage, profile.Location, investorName, topScore, schemeName, detected.ResponseLang)
	result.AnswerText = fmt.Sprintf("• Investor: %s — %s\n• Scheme: %s — %s\n• Language: %s.",
		investorName, why, schemeName, eligibility, detected.ResponseLang)

	return result
}
