package review

import (
	bookingRepo "careconnect/database/repository/booking"
	reviewRepo "careconnect/database/repository/review"
	userRepo "careconnect/database/repository/user"
	"careconnect/models"
)

// ReviewService accepts seeker feedback for completed bookings and keeps
// each provider's average rating current.
type ReviewService interface {
	SubmitReview(seekerID string, req SubmitRequest) (*models.Review, error)
	ListProviderReviews(providerID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Users    userRepo.UserRepository
}

// SubmitRequest carries a seeker's review input.
type SubmitRequest struct {
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}
