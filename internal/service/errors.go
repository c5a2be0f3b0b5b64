// Package service implements the domain operations on top of the stores.
// Stores return absence markers; services translate them into the sentinel
// errors below, which the HTTP boundary maps to status codes.
package service

import (
	"errors"
)

var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
)
