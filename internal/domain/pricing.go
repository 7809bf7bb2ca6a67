package domain

import "time"

// PricingMode is how a day is priced.
type PricingMode string

const (
	PricingHourly  PricingMode = "hourly"
	PricingFullDay PricingMode = "full_day"
	PricingBoth    PricingMode = "both"
)

// ParsePricingMode validates a mode string.
func ParsePricingMode(s string) (PricingMode, bool) {
	switch PricingMode(s) {
	case PricingHourly, PricingFullDay, PricingBoth:
		return PricingMode(s), true
	default:
		return "", false
	}
}

// PricingRule is one row of a venue pricing table, keyed by day of week.
type PricingRule struct {
	VenueID      int64
	DayOfWeek    time.Weekday
	Mode         PricingMode
	HourlyRate   *float64
	FullDayRate  *float64
	MinimumHours *float64
}

// DepositRule applies Percentage when a booking is made at least
// DaysBeforeThreshold days before the event.
type DepositRule struct {
	DaysBeforeThreshold int
	Percentage          float64
}
