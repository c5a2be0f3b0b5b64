package service

import (
	"github.com/attila122/hyratryggt/internal/models"
	"github.com/attila122/hyratryggt/internal/store"
)

// LeadService records unauthenticated quick registrations and listing
// inquiries. Records are append-only; nothing is delivered anywhere.
type LeadService struct {
	leads    *store.LeadStore
	listings *store.ListingStore
}

func NewLeadService(leads *store.LeadStore, listings *store.ListingStore) *LeadService {
	return &LeadService{leads: leads, listings: listings}
}

// QuickRegister stores a lead. Rent is nil when absent or unparseable.
func (s *LeadService) QuickRegister(name, email, city string, rent *int) models.LeadRegistration {
	return s.leads.AddRegistration(models.LeadRegistration{
		Name:  name,
		Email: email,
		City:  city,
		Rent:  rent,
	})
}

// Registrations returns every captured lead in submission order.
func (s *LeadService) Registrations() []models.LeadRegistration {
	return s.leads.Registrations()
}

// Contact records an inquiry about a listing. The listing must exist.
func (s *LeadService) Contact(listingID, senderID int, message string) (models.ContactMessage, error) {
	if _, found := s.listings.FindByID(listingID); !found {
		return models.ContactMessage{}, ErrNotFound
	}

	return s.leads.AddContact(models.ContactMessage{
		ListingID: listingID,
		SenderID:  senderID,
		Message:   message,
	}), nil
}
