package booking

import (
	"context"
	"time"

	bookingRepo "careconnect/database/repository/booking"
	resourceRepo "careconnect/database/repository/resource"
	"careconnect/services/tasks"

	"careconnect/models"
)

// CreateBookingRequest carries the seeker's input for a new booking.
type CreateBookingRequest struct {
	ProviderID  string    `json:"providerId"`
	ResourceID  string    `json:"resourceId"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// BookingService owns the lifecycle of every booking: it holds the
// authoritative status and accepts or rejects transition requests based on
// the acting user's relationship to the booking and the current status.
//
// Transitions on the same booking are serialized through the repository's
// conditional status update; of two racing transitions exactly one succeeds
// and the other observes an InvalidStateError.
type BookingService interface {
	CreateBooking(ctx context.Context, seekerID string, req CreateBookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error)
	ListForSeeker(ctx context.Context, seekerID string) ([]models.Booking, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Resources resourceRepo.ResourceRepository
	Reminders *tasks.ReminderScheduler // optional; nil disables reminders
}
