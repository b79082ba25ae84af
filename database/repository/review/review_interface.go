package reviewRepo

import "careconnect/models"

// ReviewRepository defines data access for booking reviews.
// GetByBookingID returns (nil, nil) when no document matches.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByBookingID retrieves the review attached to a booking, if any.
	GetByBookingID(bookingID string) (*models.Review, error)
	// ListByProvider retrieves all reviews for a provider.
	ListByProvider(providerID string) ([]models.Review, error)
	// AverageRatingForProvider computes the mean rating across a provider's reviews.
	// Returns 0 when the provider has no reviews.
	AverageRatingForProvider(providerID string) (float64, error)
}
