package models_test

import (
	"testing"

	"janseva/internal/models"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStringSet(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "lowercases and trims",
			input:    []string{"  Aadhaar ", "PAN Card"},
			expected: []string{"aadhaar", "pan card"},
		},
		{
			name:     "deduplicates mixed case",
			input:    []string{"PM-Kisan", "pm-kisan", " PM-KISAN "},
			expected: []string{"pm-kisan"},
		},
		{
			name:     "drops empties",
			input:    []string{"", "  ", "scholarship"},
			expected: []string{"scholarship"},
		},
		{
			name:     "preserves first-occurrence order",
			input:    []string{"b", "a", "B", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, models.NormalizeStringSet(tt.input))
		})
	}
}

func TestFaqNormalize(t *testing.T) {
	faq := &models.Faq{
		Question:   "  How do I link PAN with Aadhaar?  ",
		Answer:     " Use the e-filing portal. ",
		Department: " Income Tax ",
		Tags:       []string{" PAN ", "pan", "Tax"},
		Keywords:   []string{"Link PAN Aadhaar", "", "link pan aadhaar"},
	}

	faq.Normalize()

	require.Equal(t, "How do I link PAN with Aadhaar?", faq.Question)
	require.Equal(t, "Use the e-filing portal.", faq.Answer)
	require.Equal(t, "Income Tax", faq.Department)
	require.Equal(t, []string{"pan", "tax"}, faq.Tags)
	require.Equal(t, []string{"link pan aadhaar"}, faq.Keywords)
}

func TestSchemeNormalize(t *testing.T) {
	scheme := &models.Scheme{
		SchemeName:        " PM-Kisan Samman Nidhi ",
		Keywords:          []string{"PM Kisan", "pm kisan", " farmer "},
		DocumentsRequired: []string{" Aadhaar card ", "Aadhaar card", "", "Bank passbook"},
	}

	scheme.Normalize()

	require.Equal(t, "PM-Kisan Samman Nidhi", scheme.SchemeName)
	require.Equal(t, []string{"pm kisan", "farmer"}, scheme.Keywords)
	// Documents keep their original case, deduplicated after trimming.
	require.Equal(t, []string{"Aadhaar card", "Bank passbook"}, scheme.DocumentsRequired)
}
