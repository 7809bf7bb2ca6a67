package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	lastUser *domain.BookingStatus
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	r.lastUser = status
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID && (status == nil || b.Status == *status) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) GetByVenueAndDate(_ context.Context, f domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.VenueID == f.VenueID && b.OccupiesVenue() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeVenueRepo struct{}

func (fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if id != 1 {
		return nil, venueRepo.ErrVenueNotFound
	}
	return &domain.Venue{ID: 1}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func newBooking(id, userID int64, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		VenueID:   1,
		UserID:    userID,
		Date:      day,
		StartTime: types.MustTimeString(start),
		EndTime:   types.MustTimeString(end),
		Status:    status,
	}
}

func newService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return NewService(repo, fakeVenueRepo{}, nopLogger{}), repo
}

func TestGetByID(t *testing.T) {
	svc, _ := newService(newBooking(1, 10, "10:00", "12:00", domain.StatusConfirmed))

	resp, err := svc.GetByID(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)

	_, err = svc.GetByID(context.Background(), 1, 11)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 2, 10)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	svc, repo := newService(
		newBooking(1, 10, "10:00", "12:00", domain.StatusConfirmed),
		newBooking(2, 10, "14:00", "16:00", domain.StatusCancelled),
		newBooking(3, 11, "14:00", "16:00", domain.StatusConfirmed),
	)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 10})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	require.NotNil(t, repo.lastUser)
	assert.Equal(t, domain.StatusCancelled, *repo.lastUser)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("in_progress"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetVenueDay_StackOrder(t *testing.T) {
	base := newBooking(1, 10, "10:00", "14:00", domain.StatusConfirmed)
	older := newBooking(2, 10, "11:00", "12:00", domain.StatusConfirmed)
	older.IsOverride = true
	older.CreatedAt = time.Unix(5000, 0)
	newer := newBooking(3, 10, "12:00", "13:00", domain.StatusConfirmed)
	newer.IsOverride = true
	newer.CreatedAt = time.Unix(7250, 0)

	svc, _ := newService(older, base, newer)

	resp, err := svc.GetVenueDay(context.Background(), 1, day)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, "2026-06-10", resp.Date)

	assert.Equal(t, int64(1), resp.Bookings[0].ID)
	assert.Equal(t, 10, resp.Bookings[0].ZIndex)
	assert.Empty(t, resp.Bookings[0].OverriddenBookingIDs)

	assert.Equal(t, int64(3), resp.Bookings[1].ID)
	assert.Equal(t, 11+250, resp.Bookings[1].ZIndex)
	assert.Equal(t, []int64{1}, resp.Bookings[1].OverriddenBookingIDs)

	assert.Equal(t, int64(2), resp.Bookings[2].ID)
	assert.Equal(t, 11, resp.Bookings[2].ZIndex)

	_, err = svc.GetVenueDay(context.Background(), 9, day)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestCancel(t *testing.T) {
	svc, repo := newService(
		newBooking(1, 10, "10:00", "12:00", domain.StatusConfirmed),
		newBooking(2, 10, "14:00", "16:00", domain.StatusDraft),
	)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Cancel(ctx, 1, 11), ErrAccessDenied)
	require.NoError(t, svc.Cancel(ctx, 1, 10))
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	assert.ErrorIs(t, svc.Cancel(ctx, 1, 10), ErrCannotCancel)
	assert.ErrorIs(t, svc.Cancel(ctx, 2, 10), ErrCannotCancel)
	assert.ErrorIs(t, svc.Cancel(ctx, 3, 10), ErrBookingNotFound)
}
