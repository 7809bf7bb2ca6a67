package availability

import (
	"sort"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Stacking constants for the visual grid.
const (
	BaseZIndex          = 10
	OverrideZIndex      = BaseZIndex + 1
	OverrideZIndexRange = 1000
)

// OverrideRelation links an override booking to the bookings it coexists with.
type OverrideRelation struct {
	OverrideBookingID    int64
	OverriddenBookingIDs []int64
}

// FindOverriddenBookings returns the non-override bookings whose buffered span
// intersects the override booking's buffered span. Display only: it has no
// effect on availability.
func FindOverriddenBookings(override *domain.Booking, all []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	if override == nil {
		return result
	}

	outer := SpanOf(override).Outer()
	for _, b := range all {
		if b == nil || b.ID == override.ID || b.IsOverride {
			continue
		}
		if outer.Overlaps(SpanOf(b).Outer()) {
			result = append(result, b)
		}
	}
	return result
}

// ResolveOverrides builds one relation per override booking in all,
// ordered by override booking ID.
func ResolveOverrides(all []*domain.Booking) []OverrideRelation {
	relations := make([]OverrideRelation, 0)

	for _, b := range all {
		if b == nil || !b.IsOverride {
			continue
		}
		overridden := FindOverriddenBookings(b, all)
		ids := make([]int64, 0, len(overridden))
		for _, o := range overridden {
			ids = append(ids, o.ID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

		relations = append(relations, OverrideRelation{
			OverrideBookingID:    b.ID,
			OverriddenBookingIDs: ids,
		})
	}

	sort.SliceStable(relations, func(i, j int) bool {
		return relations[i].OverrideBookingID < relations[j].OverrideBookingID
	})
	return relations
}

// StackedBooking is a booking with its z-index in the grid.
type StackedBooking struct {
	Booking *domain.Booking
	ZIndex  int
}

// StackOrder orders bookings for rendering: non-overrides first at the base
// z-index, then overrides newest first. An override's z-index is derived from
// its creation time modulo OverrideZIndexRange, so it stays bounded.
func StackOrder(bookings []*domain.Booking) []StackedBooking {
	ordered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			ordered = append(ordered, b)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.IsOverride != b.IsOverride {
			return !a.IsOverride
		}
		if a.IsOverride && !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	result := make([]StackedBooking, len(ordered))
	for i, b := range ordered {
		z := BaseZIndex
		if b.IsOverride {
			z = OverrideZIndex + int(mod(b.CreatedAt.Unix(), OverrideZIndexRange))
		}
		result[i] = StackedBooking{Booking: b, ZIndex: z}
	}
	return result
}

func mod(a, n int64) int64 {
	return ((a % n) + n) % n
}
