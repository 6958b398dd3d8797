package models

import (
	"time"

	"github.com/google/uuid"
)

// Image source types for a scheduled ad.
const (
	ImageTypeURL    = "url"
	ImageTypeUpload = "upload"
	ImageTypeNone   = "none"
)

// ScheduleWindow is one advertisement campaign with a date/time window.
// StartTime and EndTime apply only on the boundary dates: days strictly
// between StartDate and EndDate are covered in full.
type ScheduleWindow struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	BackgroundImage     string    `json:"background_image,omitempty"`
	BackgroundImageType string    `json:"background_image_type"`
	BackgroundImageData string    `json:"background_image_data,omitempty"`
	BackgroundColor     string    `json:"background_color"`
	PageTitle           string    `json:"page_title,omitempty"`
	ButtonText          string    `json:"button_text,omitempty"`
	StartDate           Date      `json:"start_date"`
	EndDate             Date      `json:"end_date"`
	StartTime           TimeOfDay `json:"start_time"`
	EndTime             TimeOfDay `json:"end_time"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	CreatedBy           string    `json:"created_by,omitempty"`
}

// StartsAt returns the first instant the window covers.
func (w ScheduleWindow) StartsAt() time.Time {
	return w.StartDate.At(w.StartTime)
}

// EndsAt returns the last instant the window covers (closed interval).
func (w ScheduleWindow) EndsAt() time.Time {
	return w.EndDate.At(w.EndTime)
}

// ActiveAd is the public payload the login page renders for a window.
// Image is the materialized source (direct URL or data URI); windows that
// materialize to an empty image are never exposed.
type ActiveAd struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Image       string    `json:"image"`
}
