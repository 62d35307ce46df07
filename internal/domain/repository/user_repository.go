package repository

import "github.com/flogin/flogin-api/internal/domain/entity"

// UserRepository defines the persistence port for User.
type UserRepository interface {
	// Create persists a new user and assigns its ID.
	Create(user *entity.User) error
	// FindAll returns every user row; the credential cache reads it once at startup.
	FindAll() ([]*entity.User, error)
	// ExistsByUsername reports whether a user with that username exists.
	ExistsByUsername(username string) (bool, error)
}
