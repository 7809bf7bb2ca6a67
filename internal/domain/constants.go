package domain

// Default configuration values
const (
	DefaultSlotStepMinutes   = 30
	DefaultOpenHour          = 8
	DefaultCloseHour         = 22
	DefaultDepositPercentage = 30.0
)

// Business validation constants
const (
	MinSlotStepMinutes  = 5
	MaxSlotStepMinutes  = 240
	MaxBufferMinutes    = 12 * 60
	MaxNotesLength      = 500
	MaxBookingDaysAhead = 730
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses are the statuses that block a venue's timeline.
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses lists every known booking status.
var AllStatuses = []BookingStatus{
	StatusDraft,
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseBookingStatus validates a status string.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}
