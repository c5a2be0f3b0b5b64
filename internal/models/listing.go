package models

import (
	"time"
)

// Listing is a rental advertisement. Photos hold public path references
// ("/uploads/...") in upload order; OwnerID is fixed at creation.
type Listing struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Rent        int        `json:"rent"`
	Size        int        `json:"size"`
	City        string     `json:"city"`
	Address     string     `json:"address"`
	Photos      []string   `json:"photos"`
	OwnerID     int        `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
