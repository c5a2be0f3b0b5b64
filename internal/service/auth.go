package service

import (
	"fmt"

	"github.com/attila122/hyratryggt/internal/models"
	"github.com/attila122/hyratryggt/internal/store"
	"github.com/attila122/hyratryggt/internal/utils"
)

// AuthService registers and authenticates users and issues session tokens.
type AuthService struct {
	users *store.UserStore
}

func NewAuthService(users *store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account and issues a token. The email must not already
// be registered (exact, case-sensitive match). Unknown roles become tenant.
func (s *AuthService) Register(name, email, password, role string) (models.User, string, error) {
	if _, exists := s.users.FindByEmail(email); exists {
		return models.User{}, "", ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("AuthService.Register: hashing password: %w", err)
	}

	user := s.users.Add(models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.NormalizeRole(role),
	})

	token, err := utils.GenerateToken(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("AuthService.Register: generating token: %w", err)
	}

	return user, token, nil
}

// Login checks credentials and issues a token. Unknown email and wrong
// password return the same error so callers cannot tell the cases apart.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, found := s.users.FindByEmail(email)
	if !found {
		return models.User{}, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("AuthService.Login: generating token: %w", err)
	}

	return user, token, nil
}

// CurrentUser resolves token claims to a live account. A valid token whose
// user no longer exists yields ErrNotFound.
func (s *AuthService) CurrentUser(userID int) (models.User, error) {
	user, found := s.users.FindByID(userID)
	if !found {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
