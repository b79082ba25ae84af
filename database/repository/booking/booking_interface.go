package bookingRepo

import (
	"context"

	"careconnect/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for booking records.
//
// UpdateStatusIfCurrent is the only way a booking's status changes: it applies
// the new status in a single conditional update that re-validates the current
// status against the write, so concurrent transitions on the same booking are
// serialized by the database. It reports whether a document matched; a false
// result with no error means the booking either does not exist or is not in
// one of the permitted source states.
//
// GetByID returns (nil, nil) when no document matches.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListBySeeker(ctx context.Context, seekerID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	UpdateStatusIfCurrent(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus, extraSet bson.M) (bool, error)
}
