package check_conflict

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

var testDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) GetByVenueAndDate(context.Context, domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, r.err
}

type fakeVenueRepo struct{}

func (fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if id != 1 {
		return nil, venueRepo.ErrVenueNotFound
	}
	return &domain.Venue{ID: 1, OpenHour: 8, CloseHour: 22}, nil
}

type fakeMetrics struct {
	count int
}

func (m *fakeMetrics) IncConflict(string) { m.count++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func booking(id int64, start, end string, setup, breakdown int) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		VenueID:          1,
		Date:             testDate,
		StartTime:        types.MustTimeString(start),
		EndTime:          types.MustTimeString(end),
		SetupMinutes:     setup,
		BreakdownMinutes: breakdown,
		Status:           domain.StatusConfirmed,
	}
}

func request(start, end string, setup, breakdown int) *Request {
	return &Request{
		VenueID:          1,
		Date:             testDate,
		StartTime:        types.MustTimeString(start),
		EndTime:          types.MustTimeString(end),
		SetupMinutes:     setup,
		BreakdownMinutes: breakdown,
	}
}

func TestExecute(t *testing.T) {
	existing := []*domain.Booking{
		booking(1, "10:00", "12:00", 0, 60),
		booking(2, "18:00", "20:00", 30, 0),
		booking(3, "14:00", "15:00", 0, 0),
	}
	existing[2].IsOverride = true

	tests := []struct {
		name    string
		req     *Request
		wantIDs []int64
	}{
		{
			name:    "setup overlaps breakdown of earlier booking",
			req:     request("13:30", "14:30", 60, 0),
			wantIDs: []int64{1},
		},
		{
			name:    "touching buffers do not conflict",
			req:     request("14:00", "16:00", 60, 0),
			wantIDs: []int64{},
		},
		{
			name:    "override bookings are ignored",
			req:     request("14:15", "14:45", 0, 0),
			wantIDs: []int64{},
		},
		{
			name:    "spans both",
			req:     request("11:00", "19:00", 0, 0),
			wantIDs: []int64{1, 2},
		},
		{
			name: "excluded booking is skipped",
			req: func() *Request {
				r := request("11:00", "19:00", 0, 0)
				r.ExcludeBookingID = 1
				return r
			}(),
			wantIDs: []int64{2},
		},
		{
			name: "override enabled",
			req: func() *Request {
				r := request("11:00", "19:00", 0, 0)
				r.OverrideEnabled = true
				return r
			}(),
			wantIDs: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMetrics{}
			uc := NewUseCase(&fakeBookingRepo{bookings: existing}, fakeVenueRepo{}, m, nopLogger{})

			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, resp.ConflictingBookingIDs)
			assert.Equal(t, len(tt.wantIDs) > 0, resp.HasConflict)
			if resp.HasConflict {
				assert.Equal(t, 1, m.count)
			} else {
				assert.Zero(t, m.count)
			}
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	t.Run("invalid interval", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, fakeVenueRepo{}, &fakeMetrics{}, nopLogger{})
		_, err := uc.Execute(context.Background(), request("15:00", "14:00", 0, 0))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative buffer", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, fakeVenueRepo{}, &fakeMetrics{}, nopLogger{})
		_, err := uc.Execute(context.Background(), request("14:00", "15:00", -1, 0))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("venue not found", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{}, fakeVenueRepo{}, &fakeMetrics{}, nopLogger{})
		req := request("14:00", "15:00", 0, 0)
		req.VenueID = 2
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		uc := NewUseCase(&fakeBookingRepo{err: errors.New("db down")}, fakeVenueRepo{}, &fakeMetrics{}, nopLogger{})
		_, err := uc.Execute(context.Background(), request("14:00", "15:00", 0, 0))
		assert.ErrorIs(t, err, ErrInternal)
	})
}
