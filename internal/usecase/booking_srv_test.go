package usecase

import (
	"context"
	"sort"
	"sync"
	"testing"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository that mirrors the
// partial unique index: Create rejects a second active booking for the
// same (hall, date).
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Hall == booking.Hall && b.Date == booking.Date && b.Active() {
			return entity.ErrDateBooked
		}
	}

	stored := *booking
	r.bookings[booking.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	found := *b
	return &found, nil
}

func (r *fakeBookingRepo) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entity.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		found := *b
		all = append(all, &found)
	}

	// created_at DESC; ids are monotonic so they break same-instant ties
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	return all, nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return entity.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return entity.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) ExistsActive(ctx context.Context, hall entity.Hall, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.Hall == hall && b.Date == date && b.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) FindActiveDates(ctx context.Context, hall entity.Hall) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	dates := make([]string, 0)
	for _, b := range r.bookings {
		if b.Hall == hall && b.Active() {
			dates = append(dates, b.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

type nopNotifier struct{}

func (nopNotifier) BookingCreated(*entity.Booking) {}
func (nopNotifier) StatusChanged(*entity.Booking)  {}

func newTestBookingService() (BookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(&repository.Repository{Booking: repo}, nopNotifier{}, zap.NewNop())
	return svc, repo
}

func validBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		Name:      "Alice Smith",
		Email:     "alice@example.com",
		Phone:     "555-0101",
		Date:      "2026-09-12",
		Guests:    120,
		EventType: "wedding",
		Hall:      "big",
		Package:   "premium",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo := newTestBookingService()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Alice Smith", booking.Name)
	assert.Equal(t, entity.HallBig, booking.Hall)
	assert.Equal(t, entity.PackagePremium, booking.Package)
	assert.Equal(t, float64(10000), booking.Total)
	assert.Equal(t, float64(1000), booking.Deposit)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())

	stored, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, booking.ID, stored.ID)
}

func TestCreateBookingMissingField(t *testing.T) {
	mutations := map[string]func(*request.CreateBookingRequest){
		"name":      func(r *request.CreateBookingRequest) { r.Name = "" },
		"email":     func(r *request.CreateBookingRequest) { r.Email = "" },
		"phone":     func(r *request.CreateBookingRequest) { r.Phone = "" },
		"date":      func(r *request.CreateBookingRequest) { r.Date = "" },
		"guests":    func(r *request.CreateBookingRequest) { r.Guests = 0 },
		"eventType": func(r *request.CreateBookingRequest) { r.EventType = "" },
		"hall":      func(r *request.CreateBookingRequest) { r.Hall = "" },
		"package":   func(r *request.CreateBookingRequest) { r.Package = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			svc, repo := newTestBookingService()

			req := validBookingRequest()
			mutate(req)

			_, err := svc.CreateBooking(context.Background(), req)
			assert.ErrorIs(t, err, entity.ErrValidation)

			// Nothing persisted
			all, _ := repo.FindAll(context.Background())
			assert.Empty(t, all)
		})
	}
}

func TestCreateBookingInvalidEnum(t *testing.T) {
	svc, _ := newTestBookingService()

	req := validBookingRequest()
	req.Hall = "medium"
	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrValidation)

	req = validBookingRequest()
	req.Package = "deluxe"
	_, err = svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	_, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	// Same hall, same date
	_, err = svc.CreateBooking(ctx, validBookingRequest())
	assert.ErrorIs(t, err, entity.ErrDateBooked)

	// Other hall, same date is fine
	req := validBookingRequest()
	req.Hall = "small"
	_, err = svc.CreateBooking(ctx, req)
	assert.NoError(t, err)
}

func TestCreateBookingConcurrent(t *testing.T) {
	svc, _ := newTestBookingService()

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateBooking(context.Background(), validBookingRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, entity.ErrDateBooked)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent create must win")
}

func TestCancelReleasesDate(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	dates, err := svc.GetBookedDates(ctx)
	require.NoError(t, err)
	assert.Contains(t, dates.Big, booking.Date)

	_, err = svc.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	dates, err = svc.GetBookedDates(ctx)
	require.NoError(t, err)
	assert.NotContains(t, dates.Big, booking.Date)

	// The slot can be booked again
	_, err = svc.CreateBooking(ctx, validBookingRequest())
	assert.NoError(t, err)
}

func TestGetBookedDates(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	// Empty store yields empty arrays, not nil
	dates, err := svc.GetBookedDates(ctx)
	require.NoError(t, err)
	assert.NotNil(t, dates.Small)
	assert.NotNil(t, dates.Big)
	assert.Empty(t, dates.Small)
	assert.Empty(t, dates.Big)

	wanted := map[string][]string{
		"small": {"2026-10-01", "2026-10-03"},
		"big":   {"2026-10-02"},
	}
	for hall, ds := range wanted {
		for _, d := range ds {
			req := validBookingRequest()
			req.Hall = hall
			req.Date = d
			_, err := svc.CreateBooking(ctx, req)
			require.NoError(t, err)
		}
	}

	dates, err = svc.GetBookedDates(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, wanted["small"], dates.Small)
	assert.ElementsMatch(t, wanted["big"], dates.Big)
}

func TestGetBookingsOrder(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	var created []string
	for _, date := range []string{"2026-11-01", "2026-11-02", "2026-11-03"} {
		req := validBookingRequest()
		req.Date = date
		booking, err := svc.CreateBooking(ctx, req)
		require.NoError(t, err)
		created = append(created, booking.ID)
	}

	bookings, err := svc.GetBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	// Newest first
	assert.Equal(t, created[2], bookings[0].ID)
	assert.Equal(t, created[1], bookings[1].ID)
	assert.Equal(t, created[0], bookings[2].ID)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)

	// Everything else untouched
	assert.Equal(t, booking.ID, updated.ID)
	assert.Equal(t, booking.Date, updated.Date)
	assert.Equal(t, booking.Total, updated.Total)
	assert.Equal(t, booking.CreatedAt, updated.CreatedAt)
}

func TestUpdateStatusErrors(t *testing.T) {
	svc, _ := newTestBookingService()
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "missing-id", &request.UpdateBookingStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)

	booking, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: ""})
	assert.ErrorIs(t, err, entity.ErrValidation)

	_, err = svc.UpdateStatus(ctx, booking.ID, &request.UpdateBookingStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestDeleteBooking(t *testing.T) {
	svc, repo := newTestBookingService()
	ctx := context.Background()

	err := svc.DeleteBooking(ctx, "missing-id")
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)

	booking, err := svc.CreateBooking(ctx, validBookingRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(ctx, booking.ID))

	stored, err := repo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
