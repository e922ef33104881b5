// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Retailer is a game store with a physical location. Retailer records are
// administrative data: they are created and updated outside this service
// and treated as immutable for the duration of a proximity search.
type Retailer struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Zip         string    `json:"zip"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"lng"`
	Status      string    `json:"status"`
	IsFeatured  bool      `json:"is_featured"`
	StorePhoto  string    `json:"store_photo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RetailerStatusActive marks retailers that appear in listings and
// proximity searches.
const RetailerStatusActive = "active"

// Point returns the retailer's coordinates as an orb point (lng, lat order).
func (r *Retailer) Point() orb.Point {
	return orb.Point{r.Longitude, r.Latitude}
}
