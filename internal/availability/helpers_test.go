package availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.MustTimeString(s)
}

func booking(id int64, start, end string, setup, breakdown int) *domain.Booking {
	return &domain.Booking{
		ID:               id,
		VenueID:          1,
		StartTime:        ts(start),
		EndTime:          ts(end),
		SetupMinutes:     setup,
		BreakdownMinutes: breakdown,
		Status:           domain.StatusConfirmed,
		CreatedAt:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func override(id int64, start, end string, setup, breakdown int, createdAt time.Time) *domain.Booking {
	b := booking(id, start, end, setup, breakdown)
	b.IsOverride = true
	b.CreatedAt = createdAt
	return b
}

func fromMinutes(m int) types.TimeString {
	return types.FromMinutes(m)
}
