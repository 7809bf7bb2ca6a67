package get_availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

type fakeVenueRepo struct {
	venues map[int64]*domain.Venue
	err    error
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.venues[id]
	if !ok {
		return nil, venueRepo.ErrVenueNotFound
	}
	return v, nil
}

type fakeLoader struct {
	bookings []*domain.Booking
	err      error
	channel  string
}

func (l *fakeLoader) Load(_ context.Context, channel string, _ int64, _ time.Time) ([]*domain.Booking, error) {
	l.channel = channel
	return l.bookings, l.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

func venues() *fakeVenueRepo {
	return &fakeVenueRepo{venues: map[int64]*domain.Venue{
		1: {ID: 1, OpenHour: 8, CloseHour: 22},
		2: {ID: 2, OpenHour: 8, CloseHour: 22, SlotStepMinutes: 60},
		3: {ID: 3, OpenHour: 22, CloseHour: 8},
	}}
}

func confirmed(id int64, start, end string, setup, breakdown int) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		VenueID:          1,
		Date:             day,
		StartTime:        types.MustTimeString(start),
		EndTime:          types.MustTimeString(end),
		SetupMinutes:     setup,
		BreakdownMinutes: breakdown,
		Status:           domain.StatusConfirmed,
	}
}

func slotAt(t *testing.T, resp *Response, at string) availability.SlotClassification {
	t.Helper()
	for _, s := range resp.Slots {
		if s.Time.String() == at {
			return s
		}
	}
	require.FailNow(t, fmt.Sprintf("slot %s not found", at))
	return availability.SlotClassification{}
}

func TestExecute_ClassifiesGrid(t *testing.T) {
	over := confirmed(9, "15:00", "16:00", 0, 0)
	over.IsOverride = true
	loader := &fakeLoader{bookings: []*domain.Booking{
		confirmed(1, "14:00", "16:00", 60, 30),
		over,
	}}
	uc := NewUseCase(venues(), loader, 30, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ClientID: "tab-1", VenueID: 1, Date: day})
	require.NoError(t, err)

	// 08:00 ... 22:00 с шагом 30 минут
	require.Len(t, resp.Slots, 29)
	assert.Equal(t, "08:00", resp.Slots[0].Time.String())
	assert.Equal(t, "22:00", resp.Slots[28].Time.String())
	assert.Equal(t, "tab-1", loader.channel)

	assert.Equal(t, availability.SlotAvailable, slotAt(t, resp, "12:30").Status)
	assert.Equal(t, availability.SlotBuffered, slotAt(t, resp, "13:00").Status)
	assert.Equal(t, availability.SlotOccupied, slotAt(t, resp, "14:00").Status)
	assert.Equal(t, availability.SlotBuffered, slotAt(t, resp, "16:00").Status)
	assert.Equal(t, availability.SlotAvailable, slotAt(t, resp, "16:30").Status)

	s15 := slotAt(t, resp, "15:00")
	assert.Equal(t, availability.SlotOccupied, s15.Status)
	assert.Equal(t, []int64{9}, s15.OverridingBookingIDs)

	assert.Equal(t, availability.Stats{Available: 22, Booked: 4, Buffer: 3}, resp.Stats)
	require.Len(t, resp.Overrides, 1)
	assert.Equal(t, []int64{1}, resp.Overrides[0].OverriddenBookingIDs)
}

func TestExecute_VenueStep(t *testing.T) {
	uc := NewUseCase(venues(), &fakeLoader{}, 30, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 2, Date: day})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.StepMinutes)
	assert.Len(t, resp.Slots, 15)
	assert.Equal(t, 15, resp.Stats.Available)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeVenueRepo
		loader  *fakeLoader
		req     Request
		wantErr error
	}{
		{name: "invalid venue id", repo: venues(), loader: &fakeLoader{}, req: Request{Date: day}, wantErr: ErrInvalidInput},
		{name: "missing date", repo: venues(), loader: &fakeLoader{}, req: Request{VenueID: 1}, wantErr: ErrInvalidInput},
		{name: "unknown venue", repo: venues(), loader: &fakeLoader{}, req: Request{VenueID: 7, Date: day}, wantErr: ErrVenueNotFound},
		{name: "broken hours", repo: venues(), loader: &fakeLoader{}, req: Request{VenueID: 3, Date: day}, wantErr: ErrInvalidVenueHours},
		{name: "venue repo down", repo: &fakeVenueRepo{err: errors.New("db")}, loader: &fakeLoader{}, req: Request{VenueID: 1, Date: day}, wantErr: ErrInternal},
		{name: "superseded", repo: venues(), loader: &fakeLoader{err: ErrStaleFetchDiscarded}, req: Request{VenueID: 1, Date: day}, wantErr: ErrStaleFetchDiscarded},
		{name: "loader failure", repo: venues(), loader: &fakeLoader{err: errors.New("db")}, req: Request{VenueID: 1, Date: day}, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, tt.loader, 30, nopLogger{})
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
