package booking

import (
	"context"

	"careconnect/models"
)

// GetBooking returns the current snapshot of a booking. Only a party to the
// booking may read it.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
	b, err := s.fetch(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actingUserID != b.SeekerID && actingUserID != b.ProviderID {
		return nil, &ForbiddenError{Message: "not a party to this booking"}
	}
	return b, nil
}

// ListForSeeker returns every booking where the caller is the seeker.
func (s *DefaultBookingService) ListForSeeker(ctx context.Context, seekerID string) ([]models.Booking, error) {
	return s.Repo.ListBySeeker(ctx, seekerID)
}

// ListForProvider returns every booking where the caller is the provider.
func (s *DefaultBookingService) ListForProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

// ListAll returns every booking record. Admin use only.
func (s *DefaultBookingService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.ListAll(ctx)
}
