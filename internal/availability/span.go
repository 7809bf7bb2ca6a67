package availability

import "github.com/m04kA/SMC-VenueBookingService/internal/domain"

// Span is a half-open interval [Start, End) in minutes since midnight.
type Span struct {
	Start int
	End   int
}

// Contains reports whether minute m lies in the span. End is exclusive.
func (s Span) Contains(m int) bool {
	return s.Start <= m && m < s.End
}

// Overlaps is the standard half-open overlap test.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// IsEmpty reports a zero-length span (a zero buffer).
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// BufferedSpan is the derived footprint of a booking.
type BufferedSpan struct {
	Occupied  Span
	Setup     Span
	Breakdown Span
}

// Outer is the occupied-or-buffered span: setup start to breakdown end.
func (b BufferedSpan) Outer() Span {
	return Span{Start: b.Setup.Start, End: b.Breakdown.End}
}

// InBuffer reports whether m falls in the setup or breakdown span.
func (b BufferedSpan) InBuffer(m int) bool {
	return b.Setup.Contains(m) || b.Breakdown.Contains(m)
}

// SpanOf computes the buffered span of a booking. It is derived on demand
// and never stored.
func SpanOf(b *domain.Booking) BufferedSpan {
	start, end := b.StartTime.Minutes(), b.EndTime.Minutes()
	return bufferedSpan(start, end, b.SetupMinutes, b.BreakdownMinutes)
}

func bufferedSpan(start, end, setup, breakdown int) BufferedSpan {
	if setup < 0 {
		setup = 0
	}
	if breakdown < 0 {
		breakdown = 0
	}
	return BufferedSpan{
		Occupied:  Span{Start: start, End: end},
		Setup:     Span{Start: start - setup, End: start},
		Breakdown: Span{Start: end, End: end + breakdown},
	}
}
