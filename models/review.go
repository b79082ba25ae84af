package models

import "time"

// Review is a seeker's feedback for a completed booking.
// At most one review exists per booking.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"bookingId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	SeekerID   string    `bson:"seekerId" json:"seekerId"`
	Rating     int       `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment    string    `bson:"comment" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
