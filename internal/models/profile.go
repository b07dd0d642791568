// internal/models/profile.go
package models

// Profile is the structured description of one capital need. It is built
// once per analysis run, either from caller-supplied form values or by the
// extractor, and is never mutated afterwards.
type Profile struct {
	Sector   string  `json:"sector"`
	Stage    string  `json:"stage"`
	Location string  `json:"location"`
	Amount   float64 `json:"amount"` // INR crore
}

// Detection is the language detector's verdict for a raw query.
type Detection struct {
	Lang         string `json:"lang"`
	Translation  string `json:"translation"`
	ResponseLang string `json:"responseLang"`
}
