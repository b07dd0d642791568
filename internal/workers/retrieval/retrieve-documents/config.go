// internal/workers/retrieval/retrieve-documents/config.go
package retrievedocuments

import (
	"time"

	"funding-copilot/internal/engine"
)

type Config struct {
	Timeout time.Duration
	TopK    int
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		TopK:    engine.RetrievalK,
	}
}
