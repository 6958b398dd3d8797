package models

import (
	"time"

	"github.com/google/uuid"
)

// TrialEmail is a visitor email captured by the portal login page.
// Emails are auto-verified on save; Consented records marketing consent.
type TrialEmail struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	Consented  bool      `json:"consented"`
	CreatedAt  time.Time `json:"created_at"`
}
