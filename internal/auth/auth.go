package auth

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"salonBooker/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// tokenPrefix marks the token as the demo stand-in it is. Nothing
// validates these tokens server-side.
const tokenPrefix = "mock-token-"

type UserStore interface {
	Users() ([]models.User, error)
	SaveUsers(users []models.User) error
}

type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service {
	return &Service{store: store}
}

// Login checks credentials by plain equality and hands back a mock token.
// An empty user store is seeded with the default admin account first, so a
// fresh deployment is immediately usable.
func (s *Service) Login(username, password string) (string, error) {
	users, err := s.store.Users()
	if err != nil {
		return "", fmt.Errorf("failed to load users: %w", err)
	}

	if len(users) == 0 {
		users = []models.User{{Username: "admin", Password: "123"}}
		if err = s.store.SaveUsers(users); err != nil {
			return "", fmt.Errorf("failed to seed default user: %w", err)
		}
	}

	for _, u := range users {
		if u.Username == username && u.Password == password {
			return tokenPrefix + uuid.NewString(), nil
		}
	}

	return "", ErrInvalidCredentials
}
