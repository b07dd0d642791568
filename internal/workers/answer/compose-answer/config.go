// internal/workers/answer/compose-answer/config.go
package composeanswer

import (
	"time"

	"funding-copilot/internal/models"
)

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
	Defaults models.Profile
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  15 * time.Second,
		CacheTTL: 5 * time.Minute,
		Defaults: models.Profile{
			Sector:   "FinTech",
			Stage:    "Seed",
			Location: "Bangalore",
			Amount:   4,
		},
	}
}
