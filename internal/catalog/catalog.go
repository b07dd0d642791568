// internal/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"funding-copilot/internal/models"
)

var ErrCatalogInvalid = errors.New("CATALOG_INVALID")

// Catalog bundles the three read-only datasets one analysis run scores
// against. After Load or Default returns, callers must treat the slices as
// immutable; the engine never mutates them and safe concurrent reads depend
// on that.
type Catalog struct {
	Investors []models.Investor `json:"investors"`
	Schemes   []models.Scheme   `json:"schemes"`
	Documents []models.Document `json:"documents"`
}

// Load reads a catalog file and rejects it if any record is malformed. A
// bad record must fail here, at load time, so it can neither crash
// mid-ranking nor silently score as a false positive.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON against the catalog schema and decodes
// it.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate applies the cross-field rules the JSON schema cannot express.
func (c *Catalog) Validate() error {
	for i, inv := range c.Investors {
		if len(inv.Ticket) != 2 {
			return fmt.Errorf("%w: investor %q (index %d): ticket must be [min, max]", ErrCatalogInvalid, inv.Name, i)
		}
		if inv.Ticket[0] > inv.Ticket[1] {
			return fmt.Errorf("%w: investor %q (index %d): ticket min %g exceeds max %g", ErrCatalogInvalid, inv.Name, i, inv.Ticket[0], inv.Ticket[1])
		}
		if inv.RecencyDays < 0 {
			return fmt.Errorf("%w: investor %q (index %d): negative recencyDays", ErrCatalogInvalid, inv.Name, i)
		}
	}
	return nil
}
