package models

import (
	"time"

	"github.com/google/uuid"
)

type Faq struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Question   string    `db:"question" json:"question"`
	Answer     string    `db:"answer" json:"answer"`
	Tags       []string  `db:"tags" json:"tags"`
	Keywords   []string  `db:"keywords" json:"keywords"`
	Department string    `db:"department" json:"department,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	// Score is populated by ranked searches only, never persisted.
	Score float64 `db:"-" json:"score,omitempty"`
}

// Normalize enforces the write-time invariants: trimmed question/answer,
// lowercased deduplicated tags and keywords with no empty strings.
func (f *Faq) Normalize() {
	f.Question = trim(f.Question)
	f.Answer = trim(f.Answer)
	f.Department = trim(f.Department)
	f.Tags = NormalizeStringSet(f.Tags)
	f.Keywords = NormalizeStringSet(f.Keywords)
}
