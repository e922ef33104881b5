// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Convention is a community convention event. Records are administrative
// data maintained outside this service; the API only reads them.
type Convention struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	Location          string    `json:"location"`
	Venue             string    `json:"venue"`
	ExpectedAttendees int       `json:"expected_attendees"`
	ImageURL          string    `json:"image_url,omitempty"`
	WebsiteURL        string    `json:"website_url,omitempty"`
	Status            string    `json:"status"`
	IsFeatured        bool      `json:"is_featured"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
