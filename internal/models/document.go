// internal/models/document.go
package models

type Document struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// RetrievedDocument pairs a corpus document with its cosine similarity to
// the query, rounded to two decimals.
type RetrievedDocument struct {
	Document   Document `json:"document"`
	Similarity float64  `json:"similarity"`
}
