package tasks

import (
	"encoding/json"
	"time"

	"careconnect/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBookingReminder = "booking:reminder"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = time.Hour

// NewBookingReminderTask builds an asynq task scheduled for fireAt.
func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues booking reminders on the asynq queue.
type ReminderScheduler struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// ScheduleForBooking enqueues a reminder one hour before the appointment.
// Appointments closer than the lead time get no reminder. Reminders are
// informational only and never touch booking state.
func (s *ReminderScheduler) ScheduleForBooking(b *models.Booking) error {
	fireAt := b.ScheduledAt.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		s.Logger.Debug("skipping reminder for near-term booking", zap.String("bookingId", b.ID))
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:   b.ID,
		SeekerID:    b.SeekerID,
		ProviderID:  b.ProviderID,
		ScheduledAt: b.ScheduledAt,
	}
	task, opts, err := NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return err
	}

	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return err
	}
	s.Logger.Info("booking reminder scheduled",
		zap.String("bookingId", b.ID),
		zap.Time("fireAt", fireAt),
	)
	return nil
}
