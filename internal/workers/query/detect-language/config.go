// internal/workers/query/detect-language/config.go
package detectlanguage

import "time"

// Detection is pure string matching, so only the job timeout is tunable.
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
