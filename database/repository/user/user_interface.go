package userRepo

import (
	"careconnect/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
// Lookup methods return (nil, nil) when no document matches.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// UpdateSetDocument applies a $set document to the user with the given ID.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
