// internal/workers/query/extract-profile/models.go
package extractprofile

import "funding-copilot/internal/models"

type Input struct {
	Query string `json:"query"`
}

type Output struct {
	Profile models.Profile `json:"profile"`
}
