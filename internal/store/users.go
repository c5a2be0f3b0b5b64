// Package store holds the process-lifetime state of the API: users, listings
// and captured leads. Each store owns its records, assigns sequential ids and
// preserves insertion order. There is no persistence; data lives and dies with
// the process.
package store

import (
	"sync"
	"time"

	"github.com/attila122/hyratryggt/internal/models"
)

// UserStore keeps registered accounts.
type UserStore struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Add assigns the next sequential id, stamps CreatedAt and stores the user.
// Email uniqueness is the caller's concern.
func (s *UserStore) Add(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)
	return user
}

// FindByEmail matches on the exact email string (case-sensitive, as stored).
func (s *UserStore) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) FindByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
