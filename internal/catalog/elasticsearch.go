// internal/catalog/elasticsearch.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"funding-copilot/internal/models"
)

// documentFetchSize caps how many corpus documents one load pulls from the
// index. The corpus is small and scored in-process; paging is not needed.
const documentFetchSize = 1000

// LoadDocuments fetches the retrieval corpus from an Elasticsearch index,
// sorted by id so catalog order (the retrieval tie-break) stays stable
// across loads.
func LoadDocuments(ctx context.Context, esClient *elasticsearch.Client, index string) ([]models.Document, error) {
	if index == "" {
		return nil, fmt.Errorf("documents index name is required")
	}

	body := `{"query": {"match_all": {}}, "sort": [{"id.keyword": {"order": "asc"}}]}`
	size := documentFetchSize
	req := esapi.SearchRequest{
		Index: []string{index},
		Body:  strings.NewReader(body),
		Size:  &size,
	}

	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search documents: %s", res.String())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.Document `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}

	documents := make([]models.Document, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		if hit.Source.ID == "" || hit.Source.Title == "" {
			return nil, fmt.Errorf("%w: document missing id or title", ErrCatalogInvalid)
		}
		documents = append(documents, hit.Source)
	}
	return documents, nil
}
