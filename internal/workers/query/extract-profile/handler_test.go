// internal/workers/query/extract-profile/handler_test.go
package extractprofile

import (
	"context"
	"testing"

	"funding-copilot/internal/common/logger"
	"funding-copilot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.Profile
	}{
		{
			name:  "all attributes present",
			query: "Need 5 Cr seed funding for my FinTech startup in Bangalore",
			want:  models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 5},
		},
		{
			name:  "edtech in mumbai with defaults for stage and amount",
			query: "Looking for capital for an edtech product in Mumbai",
			want:  models.Profile{Sector: "EdTech", Stage: "Seed", Location: "Mumbai", Amount: 4},
		},
		{
			name:  "series a with decimal crore amount",
			query: "Raising 7.5 crores for our SaaS series a round in Chennai",
			want:  models.Profile{Sector: "SaaS", Stage: "Series A", Location: "Chennai", Amount: 7.5},
		},
		{
			name:  "empty query yields pure defaults",
			query: "",
			want:  models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 4},
		},
		{
			name:  "unrelated text yields pure defaults",
			query: "hello there",
			want:  models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			output, err := h.Execute(context.Background(), &Input{Query: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.want, output.Profile)
		})
	}
}

func TestHandler_Execute_DoesNotMutateDefaults(t *testing.T) {
	h := createTestHandler(t)
	_, err := h.Execute(context.Background(), &Input{Query: "healthtech series b in delhi 20 cr"})
	require.NoError(t, err)
	assert.Equal(t, models.Profile{Sector: "FinTech", Stage: "Seed", Location: "Bangalore", Amount: 4}, h.config.Defaults)
}
