// internal/workers/query/detect-language/models.go
package detectlanguage

import "funding-copilot/internal/models"

type Input struct {
	Query string `json:"query"`
}

type Output struct {
	Language models.Detection `json:"language"`
}
