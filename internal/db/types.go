package db

import (
	"time"

	"github.com/google/uuid"
)

// Analysis represents one analysis run record
type Analysis struct {
	ID            uuid.UUID  `json:"id"`
	DocumentName  string     `json:"document_name"`
	DocumentChars int        `json:"document_chars"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Analysis run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)
