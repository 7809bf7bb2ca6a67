package availability

import (
	"sort"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// SlotStatus is the occupancy class of one time point.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotOccupied  SlotStatus = "occupied"
	SlotBuffered  SlotStatus = "buffered"
)

// SlotClassification is the derived state of one time point.
// OverridingBookingIDs lists override bookings whose footprint covers the
// point; they are reported for display and never change Status.
type SlotClassification struct {
	Time                 types.TimeString
	Status               SlotStatus
	OverridingBookingIDs []int64
}

// IsBookable returns true if a new booking may start at this point.
func (c SlotClassification) IsBookable() bool {
	return c.Status == SlotAvailable
}

// Classify labels point against bookings.
//
// Only non-override bookings decide the status: occupied wins over buffered,
// which wins over available. Override bookings are collected separately.
func Classify(point types.TimeString, bookings []*domain.Booking) SlotClassification {
	m := point.Minutes()

	result := SlotClassification{
		Time:   point,
		Status: SlotAvailable,
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		span := SpanOf(b)

		if b.IsOverride {
			if span.Outer().Contains(m) {
				result.OverridingBookingIDs = append(result.OverridingBookingIDs, b.ID)
			}
			continue
		}

		switch {
		case span.Occupied.Contains(m):
			result.Status = SlotOccupied
		case span.InBuffer(m) && result.Status == SlotAvailable:
			result.Status = SlotBuffered
		}
	}

	// Input order must not leak into the result.
	sort.Slice(result.OverridingBookingIDs, func(i, j int) bool {
		return result.OverridingBookingIDs[i] < result.OverridingBookingIDs[j]
	})

	return result
}
