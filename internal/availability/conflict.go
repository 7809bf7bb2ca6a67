package availability

import (
	"sort"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// ConflictQuery describes a proposed booking interval.
type ConflictQuery struct {
	Start            types.TimeString
	End              types.TimeString
	SetupMinutes     int
	BreakdownMinutes int
	// ExcludeBookingID skips the booking being modified; 0 excludes nothing.
	ExcludeBookingID int64
	// OverrideEnabled is the administrative escape hatch: no conflicts at all.
	OverrideEnabled bool
}

// QueryFromBooking builds a query for re-checking an existing or draft booking.
func QueryFromBooking(b *domain.Booking) ConflictQuery {
	return ConflictQuery{
		Start:            b.StartTime,
		End:              b.EndTime,
		SetupMinutes:     b.SetupMinutes,
		BreakdownMinutes: b.BreakdownMinutes,
		ExcludeBookingID: b.ID,
		OverrideEnabled:  b.IsOverride,
	}
}

func (q ConflictQuery) span() Span {
	return bufferedSpan(q.Start.Minutes(), q.End.Minutes(), q.SetupMinutes, q.BreakdownMinutes).Outer()
}

// HasConflict reports whether the proposed buffered span overlaps the
// buffered span of any existing non-override booking.
//
// The result does not depend on the order of existing. It is a pre-flight
// check only; the store's own constraint is the final authority.
func HasConflict(q ConflictQuery, existing []*domain.Booking) bool {
	if q.OverrideEnabled {
		return false
	}

	proposed := q.span()
	for _, b := range existing {
		if conflictsWith(proposed, q.ExcludeBookingID, b) {
			return true
		}
	}
	return false
}

// FindConflicts returns every booking HasConflict would trip on, ordered by ID.
func FindConflicts(q ConflictQuery, existing []*domain.Booking) []*domain.Booking {
	conflicts := make([]*domain.Booking, 0)
	if q.OverrideEnabled {
		return conflicts
	}

	proposed := q.span()
	for _, b := range existing {
		if conflictsWith(proposed, q.ExcludeBookingID, b) {
			conflicts = append(conflicts, b)
		}
	}

	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].ID < conflicts[j].ID
	})
	return conflicts
}

func conflictsWith(proposed Span, excludeID int64, b *domain.Booking) bool {
	if b == nil || b.IsOverride {
		return false
	}
	if excludeID != 0 && b.ID == excludeID {
		return false
	}
	return proposed.Overlaps(SpanOf(b).Outer())
}
