// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"funding-copilot/internal/models"
)

// LoadInvestors reads the investor catalog from Postgres. List-valued
// columns are stored as JSON and decoded per row; the same validation as
// the file loader runs before anything is returned.
func LoadInvestors(ctx context.Context, db *sql.DB) ([]models.Investor, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, sectors, stages, ticket_min, ticket_max, geo, recency_days, deals, sources, portfolio_note
		FROM investors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query investors: %w", err)
	}
	defer rows.Close()

	var investors []models.Investor
	for rows.Next() {
		var inv models.Investor
		var sectors, stages, geo, sources []byte
		var ticketMin, ticketMax float64
		if err := rows.Scan(&inv.Name, &sectors, &stages, &ticketMin, &ticketMax, &geo, &inv.RecencyDays, &inv.Deals, &sources, &inv.PortfolioNote); err != nil {
			return nil, fmt.Errorf("scan investor: %w", err)
		}
		if err := decodeList(sectors, &inv.Sectors); err != nil {
			return nil, fmt.Errorf("%w: investor %q: sectors: %v", ErrCatalogInvalid, inv.Name, err)
		}
		if err := decodeList(stages, &inv.Stages); err != nil {
			return nil, fmt.Errorf("%w: investor %q: stages: %v", ErrCatalogInvalid, inv.Name, err)
		}
		if err := decodeList(geo, &inv.Geo); err != nil {
			return nil, fmt.Errorf("%w: investor %q: geo: %v", ErrCatalogInvalid, inv.Name, err)
		}
		if err := decodeList(sources, &inv.Sources); err != nil {
			return nil, fmt.Errorf("%w: investor %q: sources: %v", ErrCatalogInvalid, inv.Name, err)
		}
		inv.Ticket = []float64{ticketMin, ticketMax}
		investors = append(investors, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investors: %w", err)
	}

	cat := Catalog{Investors: investors}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return investors, nil
}

// LoadSchemes reads the scheme catalog from Postgres.
func LoadSchemes(ctx context.Context, db *sql.DB) ([]models.Scheme, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name, sectors, stages, locations, amount, doc, eligibility, link
		FROM schemes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query schemes: %w", err)
	}
	defer rows.Close()

	var schemes []models.Scheme
	for rows.Next() {
		var s models.Scheme
		var sectors, stages, locations []byte
		if err := rows.Scan(&s.Name, &sectors, &stages, &locations, &s.Amount, &s.Doc, &s.Eligibility, &s.Link); err != nil {
			return nil, fmt.Errorf("scan scheme: %w", err)
		}
		if err := decodeList(sectors, &s.Sectors); err != nil {
			return nil, fmt.Errorf("%w: scheme %q: sectors: %v", ErrCatalogInvalid, s.Name, err)
		}
		if err := decodeList(stages, &s.Stages); err != nil {
			return nil, fmt.Errorf("%w: scheme %q: stages: %v", ErrCatalogInvalid, s.Name, err)
		}
		if err := decodeList(locations, &s.Locations); err != nil {
			return nil, fmt.Errorf("%w: scheme %q: locations: %v", ErrCatalogInvalid, s.Name, err)
		}
		schemes = append(schemes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schemes: %w", err)
	}
	return schemes, nil
}

func decodeList(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = []string{}
		return nil
	}
	return json.Unmarshal(raw, dst)
}
