package store

import (
	"sync"
	"time"

	"github.com/attila122/hyratryggt/internal/models"
)

// LeadStore keeps quick-register submissions and contact messages. Both are
// append-only with independent id sequences.
type LeadStore struct {
	mu            sync.RWMutex
	registrations []models.LeadRegistration
	contacts      []models.ContactMessage
	nextRegID     int
	nextContactID int
}

func NewLeadStore() *LeadStore {
	return &LeadStore{nextRegID: 1, nextContactID: 1}
}

func (s *LeadStore) AddRegistration(reg models.LeadRegistration) models.LeadRegistration {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg.ID = s.nextRegID
	s.nextRegID++
	reg.CreatedAt = time.Now()
	s.registrations = append(s.registrations, reg)
	return reg
}

func (s *LeadStore) Registrations() []models.LeadRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.LeadRegistration, len(s.registrations))
	copy(result, s.registrations)
	return result
}

func (s *LeadStore) AddContact(msg models.ContactMessage) models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg.ID = s.nextContactID
	s.nextContactID++
	msg.CreatedAt = time.Now()
	s.contacts = append(s.contacts, msg)
	return msg
}

func (s *LeadStore) Contacts() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.ContactMessage, len(s.contacts))
	copy(result, s.contacts)
	return result
}

func (s *LeadStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registrations) + len(s.contacts)
}
