package domain

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackID uuid.UUID

// Feedback is a message left by a site visitor.
type Feedback struct {
	ID FeedbackID `json:"id"`

	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
	// Rating is 1..5, or 0 when the visitor did not rate.
	Rating int `json:"rating,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// PageVisits is the running visit total for a single page.
type PageVisits struct {
	Page  string `json:"page"`
	Total int64  `json:"total"`
}
