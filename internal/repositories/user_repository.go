package repositories

import (
	"errors"

	"ecoshop/internal/models"
)

// ErrUserNotFound is returned when a username or user id does not exist.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	Count() (int64, error)
}
