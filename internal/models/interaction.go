package models

import (
	"time"

	"github.com/google/uuid"
)

// Source labels the provenance of a chatbot reply.
type Source string

const (
	SourceFaq      Source = "faq"
	SourceScheme   Source = "scheme"
	SourceFallback Source = "fallback"
)

// Interaction is one logged record of a resolved user query.
// Records are append-only; the core never mutates or deletes them.
type Interaction struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id,omitempty"`
	Query     string    `db:"query" json:"query"`
	Response  string    `db:"response" json:"response"`
	Intent    string    `db:"intent" json:"intent"`
	Source    Source    `db:"source" json:"source"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}
