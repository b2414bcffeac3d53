package nlp_test

import (
	"testing"

	"janseva/internal/nlp"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "  PM-Kisan   Status?? ",
			expected: "pm kisan status",
		},
		{
			name:     "collapses whitespace",
			input:    "aadhaar \t card\n\nupdate",
			expected: "aadhaar card update",
		},
		{
			name:     "keeps digits and underscores",
			input:    "Form_49A for 2024",
			expected: "form_49a for 2024",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "??!...",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \t\n ",
			expected: "",
		},
		{
			name:     "unicode letters survive",
			input:    "आधार कार्ड?",
			expected: "आधार कार्ड",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, nlp.Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := nlp.Normalize("How do I check my PM-Kisan status?!")
	require.Equal(t, once, nlp.Normalize(once))
}
