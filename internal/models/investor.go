// internal/models/investor.go
package models

// GeoAnywhere is the catalog marker for investors that write checks
// anywhere in the country.
const GeoAnywhere = "Pan-India"

type Investor struct {
	Name          string    `json:"name"`
	Sectors       []string  `json:"sectors"`
	Stages        []string  `json:"stages"`
	Ticket        []float64 `json:"ticket"` // [min, max] in INR crore
	Geo           []string  `json:"geo"`
	RecencyDays   int       `json:"recencyDays"`
	Deals         int       `json:"deals"`
	Sources       []string  `json:"sources"`
	PortfolioNote string    `json:"portfolioNote"`
}

// TicketMin and TicketMax guard against short slices so that a validated
// catalog entry is the only way to reach the scorer.
func (i Investor) TicketMin() float64 {
	if len(i.Ticket) > 0 {
		return i.Ticket[0]
	}
	return 0
}

func (i Investor) TicketMax() float64 {
	if len(i.Ticket) > 1 {
		return i.Ticket[1]
	}
	return 0
}

// ScoreBreakdown holds the points each factor earned out of its maximum.
type ScoreBreakdown struct {
	Sector  float64 `json:"sector"`  // /40
	Stage   float64 `json:"stage"`   // /25
	Ticket  float64 `json:"ticket"`  // /20
	Geo     float64 `json:"geo"`     // /10
	Recency float64 `json:"recency"` // /5
}

// ScoredInvestor pairs a catalog investor with its fit score for one
// profile. Allocated fresh per ranking run.
type ScoredInvestor struct {
	Investor  Investor       `json:"investor"`
	Total     int            `json:"total"` // 0-100
	Breakdown ScoreBreakdown `json:"breakdown"`
	Why       string         `json:"why"`
}
