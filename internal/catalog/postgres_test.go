// internal/catalog/postgres_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"funding-copilot/internal/models"
)

func TestLoadInvestors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"name", "sectors", "stages", "ticket_min", "ticket_max",
		"geo", "recency_days", "deals", "sources", "portfolio_note",
	}).
		AddRow("Sequoia Capital India", `["FinTech","SaaS"]`, `["Seed","Series A"]`, 5.0, 50.0,
			`["Pan-India"]`, 30, 12, `["news"]`, "Backed two FinTech unicorns").
		AddRow("Local Fund", `["EdTech"]`, `["Seed"]`, 1.0, 5.0,
			`["Chennai"]`, 200, 3, `[]`, "")

	mock.ExpectQuery("SELECT name, sectors, stages, ticket_min, ticket_max, geo, recency_days, deals, sources, portfolio_note").
		WillReturnRows(rows)

	investors, err := LoadInvestors(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, investors, 2)

	assert.Equal(t, models.Investor{
		Name:          "Sequoia Capital India",
		Sectors:       []string{"FinTech", "SaaS"},
		Stages:        []string{"Seed", "Series A"},
		Ticket:        []float64{5, 50},
		Geo:           []string{"Pan-India"},
		RecencyDays:   30,
		Deals:         12,
		Sources:       []string{"news"},
		PortfolioNote: "Backed two FinTech unicorns",
	}, investors[0])
	assert.Equal(t, []string{}, investors[1].Sources)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadInvestors_InvalidListColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"name", "sectors", "stages", "ticket_min", "ticket_max",
		"geo", "recency_days", "deals", "sources", "portfolio_note",
	}).AddRow("Bad Fund", `not-json`, `["Seed"]`, 5.0, 15.0, `["Pan-India"]`, 30, 1, `[]`, "")

	mock.ExpectQuery("SELECT name, sectors").WillReturnRows(rows)

	_, err = LoadInvestors(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogInvalid)
}

func TestLoadInvestors_InvalidTicketRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"name", "sectors", "stages", "ticket_min", "ticket_max",
		"geo", "recency_days", "deals", "sources", "portfolio_note",
	}).AddRow("Upside Down", `["FinTech"]`, `["Seed"]`, 20.0, 5.0, `["Pan-India"]`, 30, 1, `[]`, "")

	mock.ExpectQuery("SELECT name, sectors").WillReturnRows(rows)

	_, err = LoadInvestors(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogInvalid)
}

func TestLoadInvestors_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, sectors").WillReturnError(errors.New("connection reset"))

	_, err = LoadInvestors(context.Background(), db)
	assert.Error(t, err)
}

func TestLoadSchemes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"name", "sectors", "stages", "locations", "amount", "doc", "eligibility", "link",
	}).AddRow("National Seed Fund", `["Any"]`, `["Seed"]`, `["Pan-India"]`,
		"Up to 5 Cr", "guidelines.pdf", "DPIIT recognised startups", "https://example.gov/seed")

	mock.ExpectQuery("SELECT name, sectors, stages, locations, amount, doc, eligibility, link").
		WillReturnRows(rows)

	schemes, err := LoadSchemes(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	assert.Equal(t, "National Seed Fund", schemes[0].Name)
	assert.Equal(t, []string{"Any"}, schemes[0].Sectors)
	assert.Equal(t, []string{"Pan-India"}, schemes[0].Locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSchemes_InvalidListColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"name", "sectors", "stages", "locations", "amount", "doc", "eligibility", "link",
	}).AddRow("Broken Scheme", `{`, `["Seed"]`, `["Pan-India"]`, "5 Cr", "", "", "")

	mock.ExpectQuery("SELECT name, sectors, stages, locations").WillReturnRows(rows)

	_, err = LoadSchemes(context.Background(), db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogInvalid)
}
