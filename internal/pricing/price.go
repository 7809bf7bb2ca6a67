// Package pricing resolves booking prices and deposit percentages from
// venue pricing tables. Both resolvers are pure functions; a missing rule
// is a normal "unpriced" outcome, never an error.
package pricing

import (
	"math"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// PriceQuote is the result of ResolvePrice.
// Priced is false when no rule (or rate) exists for the day.
type PriceQuote struct {
	Mode         domain.PricingMode
	BaseRate     float64
	Total        float64
	Priced       bool
	MinimumHours float64
	MeetsMinimum bool
}

// ResolvePrice looks up the rule for date's day of week.
//
// hourly: Total = HourlyRate * durationHours; full_day: Total = FullDayRate.
// For a rule of mode "both" the requested mode applies, defaulting to hourly.
// MinimumHours is reported through MeetsMinimum and does not change Total.
func ResolvePrice(table []domain.PricingRule, date time.Time, durationHours float64, mode domain.PricingMode) PriceQuote {
	rule, ok := ruleForDay(table, date.Weekday())
	if !ok {
		return PriceQuote{Mode: mode, MeetsMinimum: true}
	}

	effective := effectiveMode(rule.Mode, mode)
	quote := PriceQuote{Mode: effective, MeetsMinimum: true}

	switch effective {
	case domain.PricingFullDay:
		if rule.FullDayRate == nil {
			return quote
		}
		quote.BaseRate = *rule.FullDayRate
		quote.Total = roundMoney(*rule.FullDayRate)
		quote.Priced = true

	default:
		if rule.HourlyRate == nil {
			return quote
		}
		quote.BaseRate = *rule.HourlyRate
		quote.Total = roundMoney(*rule.HourlyRate * durationHours)
		quote.Priced = true

		if rule.MinimumHours != nil {
			quote.MinimumHours = *rule.MinimumHours
			quote.MeetsMinimum = durationHours >= *rule.MinimumHours
		}
	}

	return quote
}

func ruleForDay(table []domain.PricingRule, day time.Weekday) (domain.PricingRule, bool) {
	for _, r := range table {
		if r.DayOfWeek == day {
			return r, true
		}
	}
	return domain.PricingRule{}, false
}

func effectiveMode(ruleMode, requested domain.PricingMode) domain.PricingMode {
	switch ruleMode {
	case domain.PricingHourly, domain.PricingFullDay:
		return ruleMode
	}
	if requested == domain.PricingFullDay {
		return domain.PricingFullDay
	}
	return domain.PricingHourly
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
