package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	resourceRepo "careconnect/database/repository/resource"
	"careconnect/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memBookingRepo is an in-memory BookingRepository. UpdateStatusIfCurrent
// holds the mutex across the read-check-write, giving it the same atomicity
// as the Mongo conditional update.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memBookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memBookingRepo) ListBySeeker(_ context.Context, seekerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.SeekerID == seekerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListByProvider(_ context.Context, providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListAll(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookingRepo) UpdateStatusIfCurrent(_ context.Context, id string, from []models.BookingStatus, to models.BookingStatus, extraSet bson.M) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return false, nil
	}
	allowed := false
	for _, s := range from {
		if b.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	if v, ok := extraSet["cancelledBy"]; ok {
		b.CancelledBy, _ = v.(string)
	}
	r.bookings[id] = b
	return true, nil
}

// memResourceRepo is a fixed-catalog ResourceRepository fake.
type memResourceRepo struct {
	resources map[string]models.Resource
}

func (r *memResourceRepo) Create(res *models.Resource) error {
	r.resources[res.ID] = *res
	return nil
}

func (r *memResourceRepo) GetByID(id string) (*models.Resource, error) {
	res, ok := r.resources[id]
	if !ok {
		return nil, nil
	}
	return &res, nil
}

func (r *memResourceRepo) GetAll(_ resourceRepo.ResourceFilter) ([]models.Resource, error) {
	var out []models.Resource
	for _, res := range r.resources {
		out = append(out, res)
	}
	return out, nil
}

func (r *memResourceRepo) GetByProvider(providerID string) ([]models.Resource, error) {
	var out []models.Resource
	for _, res := range r.resources {
		if res.ProviderID == providerID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *memResourceRepo) Update(res *models.Resource) error {
	r.resources[res.ID] = *res
	return nil
}

func (r *memResourceRepo) Delete(id string) error {
	delete(r.resources, id)
	return nil
}

const (
	testSeekerID   = "seeker-1"
	testProviderID = "provider-1"
	testResourceID = "resource-1"
)

func newTestService() (*DefaultBookingService, *memBookingRepo) {
	repo := newMemBookingRepo()
	resources := &memResourceRepo{resources: map[string]models.Resource{
		testResourceID: {
			ID:         testResourceID,
			ProviderID: testProviderID,
			Name:       "After-school child care",
			Category:   models.CategoryChildCare,
			City:       "Nairobi",
		},
	}}
	return &DefaultBookingService{Repo: repo, Resources: resources}, repo
}

func createTestBooking(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.CreateBooking(context.Background(), testSeekerID, CreateBookingRequest{
		ResourceID:  testResourceID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func TestCreateBookingStartsPending(t *testing.T) {
	svc, _ := newTestService()

	b := createTestBooking(t, svc)

	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, testSeekerID, b.SeekerID)
	assert.Equal(t, testProviderID, b.ProviderID, "providerId must come from the resource catalog")
	assert.NotEmpty(t, b.ID)
	assert.NoError(t, uuid.Validate(b.ID))
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	when := time.Now().Add(time.Hour)

	cases := []struct {
		name     string
		seekerID string
		req      CreateBookingRequest
	}{
		{"missing seeker", "", CreateBookingRequest{ResourceID: testResourceID, ScheduledAt: when}},
		{"missing resource", testSeekerID, CreateBookingRequest{ScheduledAt: when}},
		{"missing scheduledAt", testSeekerID, CreateBookingRequest{ResourceID: testResourceID}},
		{"unknown resource", testSeekerID, CreateBookingRequest{ResourceID: "nope", ScheduledAt: when}},
		{"provider mismatch", testSeekerID, CreateBookingRequest{ResourceID: testResourceID, ProviderID: "other-provider", ScheduledAt: when}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, tc.seekerID, tc.req)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestConfirmBooking(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	updated, err := svc.ConfirmBooking(context.Background(), b.ID, testProviderID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
}

func TestConfirmBookingRejectsSeeker(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	_, err := svc.ConfirmBooking(context.Background(), b.ID, testSeekerID)
	var ferr *ForbiddenError
	require.ErrorAs(t, err, &ferr)

	got, err := svc.GetBooking(context.Background(), b.ID, testSeekerID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, got.Status, "rejected transition must not change status")
}

func TestConfirmBookingUnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ConfirmBooking(context.Background(), "missing", testProviderID)
	var nferr *NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestConfirmBookingTwice(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)
	ctx := context.Background()

	_, err := svc.ConfirmBooking(ctx, b.ID, testProviderID)
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, b.ID, testProviderID)
	var serr *InvalidStateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, string(models.BookingConfirmed), serr.Current)
}

func TestCompleteBookingRequiresConfirmed(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)

	_, err := svc.CompleteBooking(context.Background(), b.ID, testProviderID)
	var serr *InvalidStateError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, string(models.BookingPending), serr.Current)
}

func TestCompleteBooking(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)
	ctx := context.Background()

	_, err := svc.ConfirmBooking(ctx, b.ID, testProviderID)
	require.NoError(t, err)

	updated, err := svc.CompleteBooking(ctx, b.ID, testProviderID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, updated.Status)
	assert.True(t, updated.Status.Terminal())
}

func TestCompleteBookingRejectsSeeker(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)
	ctx := context.Background()

	_, err := svc.ConfirmBooking(ctx, b.ID, testProviderID)
	require.NoError(t, err)

	_, err = svc.CompleteBooking(ctx, b.ID, testSeekerID)
	var ferr *ForbiddenError
	assert.ErrorAs(t, err, &ferr)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("seeker cancels pending", func(t *testing.T) {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)

		updated, err := svc.CancelBooking(ctx, b.ID, testSeekerID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, updated.Status)
		assert.Equal(t, models.RoleSeeker, updated.CancelledBy)
	})

	t.Run("provider cancels confirmed", func(t *testing.T) {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)
		_, err := svc.ConfirmBooking(ctx, b.ID, testProviderID)
		require.NoError(t, err)

		updated, err := svc.CancelBooking(ctx, b.ID, testProviderID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, updated.Status)
		assert.Equal(t, models.RoleProvider, updated.CancelledBy)
	})

	t.Run("third party is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)

		_, err := svc.CancelBooking(ctx, b.ID, "someone-else")
		var ferr *ForbiddenError
		assert.ErrorAs(t, err, &ferr)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)
		_, err := svc.ConfirmBooking(ctx, b.ID, testProviderID)
		require.NoError(t, err)
		_, err = svc.CompleteBooking(ctx, b.ID, testProviderID)
		require.NoError(t, err)

		_, err = svc.CancelBooking(ctx, b.ID, testSeekerID)
		var serr *InvalidStateError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, string(models.BookingCompleted), serr.Current)
	})

	t.Run("cancel after cancel is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)
		_, err := svc.CancelBooking(ctx, b.ID, testSeekerID)
		require.NoError(t, err)

		_, err = svc.CancelBooking(ctx, b.ID, testProviderID)
		var serr *InvalidStateError
		assert.ErrorAs(t, err, &serr)
	})
}

// Racing cancels from both parties on the same pending booking: the
// conditional update must let exactly one through, and cancelledBy must
// record the winner.
func TestConcurrentCancels(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, errs[0] = svc.CancelBooking(ctx, b.ID, testSeekerID)
		}()
		go func() {
			defer wg.Done()
			_, errs[1] = svc.CancelBooking(ctx, b.ID, testProviderID)
		}()
		wg.Wait()

		var winners, losers int
		for _, err := range errs {
			if err == nil {
				winners++
				continue
			}
			var serr *InvalidStateError
			require.True(t, errors.As(err, &serr), "unexpected error kind: %v", err)
			losers++
		}
		assert.Equal(t, 1, winners, "exactly one cancel must commit")
		assert.Equal(t, 1, losers)

		got, err := svc.GetBooking(ctx, b.ID, testSeekerID)
		require.NoError(t, err)
		require.Equal(t, models.BookingCancelled, got.Status)
		if errs[0] == nil {
			assert.Equal(t, models.RoleSeeker, got.CancelledBy)
		} else {
			assert.Equal(t, models.RoleProvider, got.CancelledBy)
		}
	}
}

// A confirm racing a cancel must serialize: the booking ends in a reachable
// terminal state and any rejected transition reports the status it lost to.
func TestConcurrentConfirmAndCancel(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		svc, _ := newTestService()
		b := createTestBooking(t, svc)

		var wg sync.WaitGroup
		var confirmErr, cancelErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, confirmErr = svc.ConfirmBooking(ctx, b.ID, testProviderID)
		}()
		go func() {
			defer wg.Done()
			_, cancelErr = svc.CancelBooking(ctx, b.ID, testSeekerID)
		}()
		wg.Wait()

		// Cancel is legal from either pending or confirmed, so it commits
		// in every ordering. Confirm commits only if it ran first.
		require.NoError(t, cancelErr)
		if confirmErr != nil {
			var serr *InvalidStateError
			require.True(t, errors.As(confirmErr, &serr), "unexpected error kind: %v", confirmErr)
			assert.Equal(t, string(models.BookingCancelled), serr.Current)
		}

		got, err := svc.GetBooking(ctx, b.ID, testSeekerID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, got.Status)
		assert.Equal(t, models.RoleSeeker, got.CancelledBy)
	}
}

func TestGetBookingAccessControl(t *testing.T) {
	svc, _ := newTestService()
	b := createTestBooking(t, svc)
	ctx := context.Background()

	// Both parties see the same record.
	forSeeker, err := svc.GetBooking(ctx, b.ID, testSeekerID)
	require.NoError(t, err)
	forProvider, err := svc.GetBooking(ctx, b.ID, testProviderID)
	require.NoError(t, err)
	assert.Equal(t, forSeeker.ID, forProvider.ID)
	assert.Equal(t, forSeeker.Status, forProvider.Status)

	_, err = svc.GetBooking(ctx, b.ID, "stranger")
	var ferr *ForbiddenError
	assert.ErrorAs(t, err, &ferr)
}

func TestListScoping(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first := createTestBooking(t, svc)
	second, err := svc.CreateBooking(ctx, "seeker-2", CreateBookingRequest{
		ResourceID:  testResourceID,
		ScheduledAt: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	mine, err := svc.ListForSeeker(ctx, testSeekerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	theirs, err := svc.ListForProvider(ctx, testProviderID)
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	_ = second
}
