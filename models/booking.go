package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Terminal reports whether no further transition is defined from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

// Booking is a single care appointment between a seeker and a provider.
// Status is mutable only through the lifecycle service; every other field
// is set at creation and never changes.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	SeekerID    string        `bson:"seekerId" json:"seekerId"`
	ProviderID  string        `bson:"providerId" json:"providerId"`
	ResourceID  string        `bson:"resourceId" json:"resourceId"`
	ScheduledAt time.Time     `bson:"scheduledAt" json:"scheduledAt"`
	Status      BookingStatus `bson:"status" json:"status"`
	CancelledBy string        `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"` // "seeker" or "provider", informational only.
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}
