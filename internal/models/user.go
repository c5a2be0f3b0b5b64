package models

import (
	"time"
)

// User roles. Anything else collapses to tenant at registration.
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
)

// User represents a registered account.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NormalizeRole maps unknown or empty roles to tenant.
func NormalizeRole(role string) string {
	switch role {
	case RoleTenant, RoleLandlord:
		return role
	default:
		return RoleTenant
	}
}
