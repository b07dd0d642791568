// internal/catalog/schema.go
package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema is the load-time contract for catalog files. Scoring
// assumes every field below is present and typed; anything else is
// rejected before it can reach the ranker.
const catalogSchema = `{
  "type": "object",
  "required": ["investors", "schemes", "documents"],
  "properties": {
    "investors": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "sectors", "stages", "ticket", "geo", "recencyDays"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "sectors": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "stages": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "ticket": {"type": "array", "items": {"type": "number"}, "minItems": 2, "maxItems": 2},
          "geo": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "recencyDays": {"type": "integer", "minimum": 0},
          "deals": {"type": "integer"},
          "sources": {"type": "array", "items": {"type": "string"}},
          "portfolioNote": {"type": "string"}
        }
      }
    },
    "schemes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "sectors", "stages", "location"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "sectors": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "stages": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "location": {"type": "array", "items": {"type": "string"}, "minItems": 1},
          "amount": {"type": "string"},
          "doc": {"type": "string"},
          "eligibility": {"type": "string"},
          "link": {"type": "string"}
        }
      }
    },
    "documents": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "text"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "source": {"type": "string"},
          "url": {"type": "string"},
          "text": {"type": "string"},
          "date": {"type": "string"}
        }
      }
    }
  }
}`

func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %v", ErrCatalogInvalid, errs)
	}
	return nil
}
