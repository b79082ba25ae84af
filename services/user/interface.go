package user

import (
	userRepo "careconnect/database/repository/user"
	"careconnect/models"
)

// UserService handles account registration, authentication and profile
// management for all three roles.
type UserService interface {
	// Registration / authentication
	RegisterUser(req RegisterRequest) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	RevokeAuthToken(userID string) error

	// Profile management
	GetUserByID(userID string) (*models.User, error)
	UpdateUser(userID string, req UpdateRequest) (*models.User, error)
	DeleteUser(userID string) error

	// Admin / utility
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateRequest carries the mutable profile fields.
type UpdateRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Bio         string `json:"bio"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
