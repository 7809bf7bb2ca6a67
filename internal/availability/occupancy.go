package availability

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Stats aggregates a slot set.
type Stats struct {
	Available int
	Booked    int
	Buffer    int
}

// Occupancy is the classified slot grid of one venue-day.
type Occupancy struct {
	Slots     []SlotClassification
	Stats     Stats
	Overrides []OverrideRelation
}

// BuildOccupancy classifies every slot against one booking snapshot.
func BuildOccupancy(slots []types.TimeString, bookings []*domain.Booking) Occupancy {
	occ := Occupancy{
		Slots:     make([]SlotClassification, len(slots)),
		Overrides: ResolveOverrides(bookings),
	}

	for i, slot := range slots {
		c := Classify(slot, bookings)
		occ.Slots[i] = c
		occ.Stats.add(c.Status)
	}
	return occ
}

// Summarize counts statuses of already classified slots.
func Summarize(slots []SlotClassification) Stats {
	var s Stats
	for _, c := range slots {
		s.add(c.Status)
	}
	return s
}

func (s *Stats) add(status SlotStatus) {
	switch status {
	case SlotOccupied:
		s.Booked++
	case SlotBuffered:
		s.Buffer++
	default:
		s.Available++
	}
}

// Total returns the number of classified slots.
func (s Stats) Total() int {
	return s.Available + s.Booked + s.Buffer
}
