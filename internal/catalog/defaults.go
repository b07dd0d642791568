// internal/catalog/defaults.go
package catalog

import "funding-copilot/internal/models"

// Default returns the embedded demo catalog: 10 investors, 4 schemes and 8
// documents. Each call allocates a fresh Catalog so callers can never
// corrupt a shared copy.
func Default() *Catalog {
	return &Catalog{
		Investors: []models.Investor{
			{Name: "Sequoia Capital India", Sectors: []string{"FinTech", "SaaS"}, Stages: []string{"Seed", "Series A"}, Ticket: []float64{5, 15}, Geo: []string{"Pan-India"}, RecencyDays: 45, Deals: 12, Sources: []string{"Crunchbase", "Website"}, PortfolioNote: "12 FinTech investments in 2024"},
			{Name: "Accel India", Sectors: []string{"FinTech", "EdTech", "SaaS"}, Stages: []string{"Seed", "Series A"}, Ticket: []float64{3, 10}, Geo: []string{"Bangalore", "Pan-India"}, RecencyDays: 80, Deals: 8, Sources: []string{"Inc42", "Website"}, PortfolioNote: "8 FinTech/EdTech bets last year"},
			{Name: "Blume Ventures", Sectors: []string{"SaaS", "Consumer", "FinTech"}, Stages: []string{"Seed"}, Ticket: []float64{1, 5}, Geo: []string{"Mumbai", "Bangalore"}, RecencyDays: 25, Deals: 14, Sources: []string{"Crunchbase"}, PortfolioNote: "Active micro VC, recent seed rounds"},
			{Name: "Matrix Partners India", Sectors: []string{"FinTech", "Consumer"}, Stages: []string{"Seed", "Series A", "Series B"}, Ticket: []float64{4, 20}, Geo: []string{"Pan-India"}, RecencyDays: 120, Deals: 10, Sources: []string{"VCCEdge"}, PortfolioNote: "Multi-stage investor with consumer tilt"},
			{Name: "Elevation Capital", Sectors: []string{"FinTech", "EdTech", "HealthTech"}, Stages: []string{"Seed", "Series A"}, Ticket: []float64{5, 18}, Geo: []string{"Delhi", "Pan-India"}, RecencyDays: 60, Deals: 9, Sources: []string{"Crunchbase"}, PortfolioNote: "Recent seed focus in fintech infra"},
			{Name: "Chiratae Ventures", Sectors: []string{"HealthTech", "FinTech", "DeepTech"}, Stages: []string{"Series A", "Series B"}, Ticket: []float64{8, 25}, Geo: []string{"Bangalore"}, RecencyDays: 200, Deals: 6, Sources: []string{"Inc42"}, PortfolioNote: "Later-stage preference, health heavy"},
			{Name: "India Quotient", Sectors: []string{"FinTech", "Consumer"}, Stages: []string{"Pre-Seed", "Seed"}, Ticket: []float64{0.5, 3}, Geo: []string{"Mumbai", "Delhi"}, RecencyDays: 30, Deals: 11, Sources: []string{"Website"}, PortfolioNote: "Very active at pre-seed"},
			{Name: "Lightspeed India", Sectors: []string{"FinTech", "SaaS", "Consumer"}, Stages: []string{"Seed", "Series A", "Series B"}, Ticket: []float64{6, 22}, Geo: []string{"Delhi", "Bangalore", "Pan-India"}, RecencyDays: 70, Deals: 13, Sources: []string{"News", "Website"}, PortfolioNote: "FinTech infra and SaaS heavy in 2024"},
			{Name: "Athera Ventures", Sectors: []string{"HealthTech", "SaaS", "FinTech"}, Stages: []string{"Seed", "Series A"}, Ticket: []float64{2, 9}, Geo: []string{"Hyderabad", "Bangalore"}, RecencyDays: 40, Deals: 7, Sources: []string{"FounderNetwork"}, PortfolioNote: "Regional focus in South India with SaaS overlap"},
			{Name: "Strive VC", Sectors: []string{"SaaS", "FinTech"}, Stages: []string{"Seed"}, Ticket: []float64{1, 4}, Geo: []string{"Kochi", "Bangalore", "Chennai"}, RecencyDays: 18, Deals: 5, Sources: []string{"Reports"}, PortfolioNote: "Cross-border fund backing B2B SaaS and payments"},
		},
		Schemes: []models.Scheme{
			{Name: "Startup India Seed Fund", Sectors: []string{"Any"}, Stages: []string{"Seed", "Pre-Seed"}, Locations: []string{"Pan-India"}, Amount: "Up to INR 2 Cr", Doc: "Startup India Portal", Eligibility: "Incorporated <2 years, DPIIT recognized, tech/innovation", Link: "https://www.startupindia.gov.in"},
			{Name: "SIDBI Fund of Funds", Sectors: []string{"Any"}, Stages: []string{"Seed", "Series A"}, Locations: []string{"Pan-India"}, Amount: "FoF via AIFs", Doc: "SIDBI", Eligibility: "Early stage, high growth potential", Link: "https://www.sidbi.in"},
			{Name: "Karnataka Elevate", Sectors: []string{"Any"}, Stages: []string{"Seed"}, Locations: []string{"Bangalore", "Karnataka"}, Amount: "Grant up to INR 50L", Doc: "Karnataka Govt", Eligibility: "Registered in Karnataka, product focus", Link: "https://startup.karnataka.gov.in"},
			{Name: "Tamil Nadu Startup Seed Grant", Sectors: []string{"Any"}, Stages: []string{"Seed"}, Locations: []string{"Chennai", "Tamil Nadu"}, Amount: "Grant up to INR 50L", Doc: "TANSIM", Eligibility: "TN registered, DPIIT recommended", Link: "https://www.tansim.in"},
		},
		Documents: []models.Document{
			{ID: "cb-fintech", Title: "Crunchbase FinTech India 2024", Source: "Crunchbase", URL: "https://www.crunchbase.com", Text: "Sequoia Capital India closed 12 FinTech seed and Series A deals in 2024 with ticket sizes INR 5-15 Cr.", Date: "2025-01-15"},
			{ID: "inc42-fintech", Title: "Inc42 FinTech Funding Pulse", Source: "Inc42", URL: "https://inc42.com", Text: "Accel India announced 8 FinTech and SaaS rounds, mostly seed, with activity concentrated in Bangalore.", Date: "2024-12-20"},
			{ID: "neo4j-graph", Title: "Graph traversal output", Source: "Neo4j", URL: "#", Text: "MATCH (i)-[:FUNDED]->(s:Startup {sector: \"FinTech\", stage: \"Seed\"}) RETURN i, count(*) ORDER BY count(*) DESC;", Date: "2025-01-02"},
			{ID: "policy-startup-india", Title: "Startup India Seed Fund Scheme PDF", Source: "Startup India", URL: "https://www.startupindia.gov.in", Text: "Eligibility: DPIIT recognized, incorporated under 2 years, tech or innovation led; grants up to INR 2 Cr.", Date: "2024-11-01"},
			{ID: "sidbi-fof", Title: "SIDBI Fund of Funds FAQ", Source: "SIDBI", URL: "https://www.sidbi.in", Text: "FoF backs AIFs investing in early stage startups across India; typical check sizes align with Series A.", Date: "2024-10-10"},
			{ID: "nasscom-report", Title: "NASSCOM SaaS 2024 snapshot", Source: "NASSCOM", URL: "https://nasscom.in", Text: "Bangalore and Delhi NCR remain top hubs; seed deals dominate 2024 with strong SaaS and FinTech overlap.", Date: "2024-12-05"},
			{ID: "lightspeed-note", Title: "Lightspeed India memo", Source: "Internal", URL: "#", Text: "Lightspeed wrote 13 India checks in 2024 across SaaS and FinTech; average ticket INR 6-22 Cr with Delhi/Bangalore focus.", Date: "2025-01-05"},
			{ID: "regional-south", Title: "South India funding brief", Source: "Analyst note", URL: "#", Text: "Hyderabad and Kochi rounds skew toward SaaS + HealthTech with emerging FinTech infra; active funds include Athera and Strive.", Date: "2024-12-28"},
		},
	}
}
