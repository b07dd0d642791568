// internal/workers/retrieval/retrieve-documents/models.go
package retrievedocuments

import "funding-copilot/internal/models"

type Input struct {
	Query string `json:"query"`

	// TopK defaults to the configured retrieval depth when zero.
	TopK int `json:"topK,omitempty"`

	// Documents overrides the handler's corpus when present.
	Documents []models.Document `json:"documents,omitempty"`
}

type Output struct {
	Documents []models.RetrievedDocument `json:"documents"`
}
