// internal/workers/query/detect-language/handler_test.go
package detectlanguage

import (
	"context"
	"testing"

	"funding-copilot/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		wantLang        string
		wantTranslation string
		wantResponse    string
	}{
		{
			name:            "english query",
			query:           "Need 5 Cr seed funding for my FinTech startup in Bangalore",
			wantLang:        "English",
			wantTranslation: "N/A",
			wantResponse:    "English",
		},
		{
			name:            "hindi devanagari query",
			query:           "मुझे फिनटेक के लिए सीड फंडिंग चाहिए",
			wantLang:        "Hindi",
			wantTranslation: "FinTech seed funding needed",
			wantResponse:    "Hindi",
		},
		{
			name:            "tamil marker query",
			query:           "ஃபின்டெக் நிறுவனத்திற்கு நிதி தேவை",
			wantLang:        "Tamil",
			wantTranslation: "Need seed funding for FinTech",
			wantResponse:    "Tamil",
		},
		{
			name:            "telugu marker query",
			query:           "తెలుగు స్టార్టప్ ఫండింగ్",
			wantLang:        "Telugu",
			wantTranslation: "Need seed funding for FinTech",
			wantResponse:    "Telugu",
		},
		{
			name:            "empty query defaults to english",
			query:           "",
			wantLang:        "English",
			wantTranslation: "N/A",
			wantResponse:    "English",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t)
			output, err := h.Execute(context.Background(), &Input{Query: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, output.Language.Lang)
			assert.Equal(t, tt.wantTranslation, output.Language.Translation)
			assert.Equal(t, tt.wantResponse, output.Language.ResponseLang)
		})
	}
}
