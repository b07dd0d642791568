// internal/catalog/catalog_test.go
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cat := Default()

	assert.Len(t, cat.Investors, 10)
	assert.Len(t, cat.Schemes, 4)
	assert.Len(t, cat.Documents, 8)
	assert.NoError(t, cat.Validate())

	// Round-trip the embedded catalog through the schema validator so the
	// schema and the embedded data can never drift apart.
	data, err := json.Marshal(cat)
	require.NoError(t, err)
	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cat, parsed)
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Investors[0].Name = "mutated"
	b := Default()
	assert.Equal(t, "Sequoia Capital India", b.Investors[0].Name)
}

func TestLoad_FromFile(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cat.Investors, 10)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParse_RejectsMalformedCatalogs(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not json",
			data: `{"investors": [`,
		},
		{
			name: "missing sections",
			data: `{"investors": []}`,
		},
		{
			name: "non-numeric ticket",
			data: `{"investors": [{"name": "Bad Fund", "sectors": ["FinTech"], "stages": ["Seed"], "ticket": ["low", "high"], "geo": ["Pan-India"], "recencyDays": 10}], "schemes": [], "documents": []}`,
		},
		{
			name: "single-element ticket",
			data: `{"investors": [{"name": "Bad Fund", "sectors": ["FinTech"], "stages": ["Seed"], "ticket": [5], "geo": ["Pan-India"], "recencyDays": 10}], "schemes": [], "documents": []}`,
		},
		{
			name: "missing investor name",
			data: `{"investors": [{"sectors": ["FinTech"], "stages": ["Seed"], "ticket": [5, 15], "geo": ["Pan-India"], "recencyDays": 10}], "schemes": [], "documents": []}`,
		},
		{
			name: "negative recency",
			data: `{"investors": [{"name": "Bad Fund", "sectors": ["FinTech"], "stages": ["Seed"], "ticket": [5, 15], "geo": ["Pan-India"], "recencyDays": -1}], "schemes": [], "documents": []}`,
		},
		{
			name: "document without id",
			data: `{"investors": [], "schemes": [], "documents": [{"title": "orphan", "text": "no id"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestValidate_TicketMinAboveMax(t *testing.T) {
	cat := Default()
	cat.Investors[0].Ticket = []float64{20, 5}
	err := cat.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogInvalid)
}
