package models

import "time"

// ReminderPayload is the body of a queued booking reminder task.
type ReminderPayload struct {
	BookingID   string    `json:"bookingId"`
	SeekerID    string    `json:"seekerId"`
	ProviderID  string    `json:"providerId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}
