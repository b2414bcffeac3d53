package service

import (
	"strings"

	"janseva/internal/models"
)

// schemeReplyFields is the fixed field order of a synthesized scheme
// reply. Each formatter returns "" when its field is empty, and empty
// formats are skipped, so no label is ever emitted without a value.
var schemeReplyFields = []func(*models.Scheme) string{
	func(s *models.Scheme) string {
		return s.ShortDescription
	},
	func(s *models.Scheme) string {
		return labeled("Eligibility", s.Eligibility)
	},
	func(s *models.Scheme) string {
		return labeled("Benefits", s.Benefits)
	},
	func(s *models.Scheme) string {
		if len(s.DocumentsRequired) == 0 {
			return ""
		}
		return "Documents Required:\n- " + strings.Join(s.DocumentsRequired, "\n- ")
	},
	func(s *models.Scheme) string {
		return labeled("How to apply", s.HowToApply)
	},
	func(s *models.Scheme) string {
		return labeled("Official", s.OfficialLink)
	},
}

// formatSchemeReply concatenates the present fields of a scheme in
// fixed order, one per line.
func formatSchemeReply(s *models.Scheme) string {
	var parts []string
	for _, format := range schemeReplyFields {
		if part := format(s); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "\n")
}

func labeled(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}
