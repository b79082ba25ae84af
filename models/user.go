package models

import "time"

// Roles a platform account can hold.
const (
	RoleSeeker   = "seeker"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents a platform account: a care seeker, a care provider or an admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	City         string    `bson:"city" json:"city,omitempty"`
	Bio          string    `bson:"bio" json:"bio,omitempty"`
	Rating       float64   `bson:"rating" json:"rating,omitempty"` // Provider average rating, maintained by the review service.
	PasswordHash string    `bson:"passwordHash" json:"-"`
	TokenHash    string    `bson:"tokenHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Sanitize strips credential material before the record leaves the service layer.
func (u *User) Sanitize() {
	u.PasswordHash = ""
	u.TokenHash = ""
}
