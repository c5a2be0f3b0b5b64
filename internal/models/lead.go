package models

import (
	"time"
)

// LeadRegistration is an unauthenticated quick-register submission.
// Rent is nil when the form omitted it or the value did not parse.
type LeadRegistration struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Rent      *int      `json:"rent"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessage is an inquiry about a listing. Append-only; there is no
// delivery mechanism, the record itself is the product.
type ContactMessage struct {
	ID        int       `json:"id"`
	ListingID int       `json:"listingId"`
	SenderID  int       `json:"senderId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
