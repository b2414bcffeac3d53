package models

import (
	"time"

	"github.com/google/uuid"
)

type Scheme struct {
	ID                uuid.UUID `db:"id" json:"id"`
	SchemeName        string    `db:"scheme_name" json:"scheme_name"`
	Category          string    `db:"category" json:"category,omitempty"`
	ShortDescription  string    `db:"short_description" json:"short_description,omitempty"`
	Description       string    `db:"description" json:"description,omitempty"`
	Eligibility       string    `db:"eligibility" json:"eligibility,omitempty"`
	Benefits          string    `db:"benefits" json:"benefits,omitempty"`
	DocumentsRequired []string  `db:"documents_required" json:"documents_required"`
	HowToApply        string    `db:"how_to_apply" json:"how_to_apply,omitempty"`
	OfficialLink      string    `db:"official_link" json:"official_link,omitempty"`
	Keywords          []string  `db:"keywords" json:"keywords"`
	State             string    `db:"state" json:"state,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`

	// Score is populated by ranked searches only, never persisted.
	Score float64 `db:"-" json:"score,omitempty"`
}

// Normalize enforces the write-time invariants: trimmed text fields,
// lowercased deduplicated keywords, deduplicated document list with
// no empty strings (documents keep their original case and order).
func (s *Scheme) Normalize() {
	s.SchemeName = trim(s.SchemeName)
	s.Category = trim(s.Category)
	s.ShortDescription = trim(s.ShortDescription)
	s.Description = trim(s.Description)
	s.Eligibility = trim(s.Eligibility)
	s.Benefits = trim(s.Benefits)
	s.HowToApply = trim(s.HowToApply)
	s.OfficialLink = trim(s.OfficialLink)
	s.State = trim(s.State)
	s.Keywords = NormalizeStringSet(s.Keywords)
	s.DocumentsRequired = dedupeTrimmed(s.DocumentsRequired)
}
