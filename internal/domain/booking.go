package domain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// ErrInvalidInterval is returned when a booking's end is not after its start
// or a buffer is negative.
var ErrInvalidInterval = errors.New("domain: invalid booking interval")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusDraft     BookingStatus = "draft"
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a snapshot of one booking record for a venue-day.
// Start/End are wall-clock times on Date; buffers are in minutes.
type Booking struct {
	ID               int64
	VenueID          int64
	UserID           int64
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	SetupMinutes     int
	BreakdownMinutes int
	IsOverride       bool
	Status           BookingStatus
	SourceDraftID    *int64 // draft this booking was converted from
	Notes            *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks start < end and non-negative buffers.
func (b *Booking) Validate() error {
	if err := b.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	if err := b.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !b.StartTime.IsBefore(b.EndTime) {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidInterval, b.EndTime, b.StartTime)
	}
	if b.SetupMinutes < 0 || b.BreakdownMinutes < 0 {
		return fmt.Errorf("%w: buffers must be non-negative", ErrInvalidInterval)
	}
	return nil
}

// DurationMinutes returns the occupied length of the booking.
func (b *Booking) DurationMinutes() int {
	return b.EndTime.Minutes() - b.StartTime.Minutes()
}

// DurationHours returns the occupied length in hours.
func (b *Booking) DurationHours() float64 {
	return float64(b.DurationMinutes()) / 60
}

// OccupiesVenue returns true if the booking takes part in availability.
// Drafts are provisional and cancelled bookings are released.
func (b *Booking) OccupiesVenue() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsDraft returns true if the booking is still a draft
func (b *Booking) IsDraft() bool {
	return b.Status == StatusDraft
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// HoursToMinutes converts a buffer given in (possibly fractional) hours.
// The sign is kept so Validate rejects negative wire values.
func HoursToMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// MinutesToHours is the inverse of HoursToMinutes for wire formats.
func MinutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}

// VenueBookingsFilter selects bookings of one venue on one date.
type VenueBookingsFilter struct {
	VenueID  int64
	Date     time.Time
	Statuses []BookingStatus // nil = OccupyingStatuses
}
