package booking

import (
	"context"
	"time"

	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Transition names used in rejection messages.
const (
	transitionConfirm  = "confirm"
	transitionCancel   = "cancel"
	transitionComplete = "complete"
)

// CreateBooking validates the request against the resource catalog and
// persists a new booking in the pending state. The seeker making the request
// becomes the booking's immutable seekerId.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, seekerID string, req CreateBookingRequest) (*models.Booking, error) {
	if seekerID == "" {
		return nil, NewValidationError("missing seeker identity")
	}
	if req.ResourceID == "" {
		return nil, NewValidationError("resourceId is required")
	}
	if req.ScheduledAt.IsZero() {
		return nil, NewValidationError("scheduledAt is required")
	}

	resource, err := s.Resources.GetByID(req.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, NewValidationError("unknown resource %s", req.ResourceID)
	}
	if req.ProviderID != "" && req.ProviderID != resource.ProviderID {
		return nil, NewValidationError("resource %s does not belong to provider %s", req.ResourceID, req.ProviderID)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:          uuid.New().String(),
		SeekerID:    seekerID,
		ProviderID:  resource.ProviderID,
		ResourceID:  resource.ID,
		ScheduledAt: req.ScheduledAt,
		Status:      models.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("seekerId", booking.SeekerID),
		zap.String("providerId", booking.ProviderID),
	)
	return booking, nil
}

// ConfirmBooking transitions pending -> confirmed. Only the booking's
// provider may confirm.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
	b, err := s.fetch(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != actingUserID {
		return nil, &ForbiddenError{Message: "only the booking's provider may confirm it"}
	}

	updated, err := s.transition(ctx, b, transitionConfirm,
		[]models.BookingStatus{models.BookingPending}, models.BookingConfirmed, nil)
	if err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleForBooking(updated); err != nil {
			// Reminder loss is tolerable; the transition already committed.
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingId", updated.ID), zap.Error(err))
		}
	}
	return updated, nil
}

// CancelBooking transitions pending|confirmed -> cancelled. Either party on
// the booking may cancel; the cancelling role is recorded for display.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
	b, err := s.fetch(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var cancelledBy string
	switch actingUserID {
	case b.SeekerID:
		cancelledBy = models.RoleSeeker
	case b.ProviderID:
		cancelledBy = models.RoleProvider
	default:
		return nil, &ForbiddenError{Message: "only a party to the booking may cancel it"}
	}

	return s.transition(ctx, b, transitionCancel,
		[]models.BookingStatus{models.BookingPending, models.BookingConfirmed},
		models.BookingCancelled,
		bson.M{"cancelledBy": cancelledBy})
}

// CompleteBooking transitions confirmed -> completed. Only the booking's
// provider may complete, and a pending booking must be confirmed first.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, bookingID, actingUserID string) (*models.Booking, error) {
	b, err := s.fetch(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != actingUserID {
		return nil, &ForbiddenError{Message: "only the booking's provider may complete it"}
	}

	return s.transition(ctx, b, transitionComplete,
		[]models.BookingStatus{models.BookingConfirmed}, models.BookingCompleted, nil)
}

// fetch loads a booking or returns a NotFoundError.
func (s *DefaultBookingService) fetch(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Entity: "booking", ID: bookingID}
	}
	return b, nil
}

// transition applies a conditional status update. The repository matches the
// document only while its status is still one of `from`, so a racing
// transition that committed first surfaces here as a zero-match, which is
// reported as an InvalidStateError against the re-read status.
func (s *DefaultBookingService) transition(ctx context.Context, b *models.Booking, name string, from []models.BookingStatus, to models.BookingStatus, extraSet bson.M) (*models.Booking, error) {
	matched, err := s.Repo.UpdateStatusIfCurrent(ctx, b.ID, from, to, extraSet)
	if err != nil {
		return nil, err
	}
	if !matched {
		current, err := s.fetch(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		return nil, &InvalidStateError{Current: string(current.Status), Transition: name}
	}

	updated, err := s.fetch(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking transition",
		zap.String("bookingId", b.ID),
		zap.String("transition", name),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}
