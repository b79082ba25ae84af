package review

import (
	"context"

	"careconnect/models"
	"careconnect/services/booking"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubmitReview records a seeker's review. A review is accepted only when the
// booking exists, belongs to the seeker, has reached the completed state and
// has not been reviewed before. The provider's average rating is recomputed
// after the write.
func (s *DefaultReviewService) SubmitReview(seekerID string, req SubmitRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, booking.NewValidationError("rating must be between 1 and 5")
	}

	b, err := s.Bookings.GetByID(context.Background(), req.BookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &booking.NotFoundError{Entity: "booking", ID: req.BookingID}
	}
	if b.SeekerID != seekerID {
		return nil, &booking.ForbiddenError{Message: "only the booking's seeker may review it"}
	}
	if b.Status != models.BookingCompleted {
		return nil, &booking.InvalidStateError{Current: string(b.Status), Transition: "review"}
	}

	existing, err := s.Repo.GetByBookingID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, booking.NewValidationError("booking %s has already been reviewed", req.BookingID)
	}

	rev := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  b.ID,
		ProviderID: b.ProviderID,
		SeekerID:   b.SeekerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}

	s.refreshProviderRating(b.ProviderID)
	return rev, nil
}

// ListProviderReviews returns every review for a provider.
func (s *DefaultReviewService) ListProviderReviews(providerID string) ([]models.Review, error) {
	return s.Repo.ListByProvider(providerID)
}

// refreshProviderRating recomputes the provider's average rating. A failure
// here leaves the stored rating stale but never fails the review write.
func (s *DefaultReviewService) refreshProviderRating(providerID string) {
	avg, err := s.Repo.AverageRatingForProvider(providerID)
	if err != nil {
		utils.GetLogger().Warn("failed to compute provider rating",
			zap.String("providerId", providerID), zap.Error(err))
		return
	}
	if err := s.Users.UpdateSetDocument(providerID, bson.M{"rating": avg}); err != nil {
		utils.GetLogger().Warn("failed to store provider rating",
			zap.String("providerId", providerID), zap.Error(err))
	}
}
