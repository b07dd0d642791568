// internal/workers/query/extract-profile/config.go
package extractprofile

import (
	"time"

	"funding-copilot/internal/models"
)

// Config carries the fallback profile used when an attribute cannot be
// read from the query text.
type Config struct {
	Timeout  time.Duration
	Defaults models.Profile
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
		Defaults: models.Profile{
			Sector:   "FinTech",
			Stage:    "Seed",
			Location: "Bangalore",
			Amount:   4,
		},
	}
}
