package pricing

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// DefaultDepositPercentage applies when no rule can be used.
const DefaultDepositPercentage = domain.DefaultDepositPercentage

// DepositSource says where a deposit percentage came from.
type DepositSource string

const (
	DepositFromRule        DepositSource = "rule"
	DepositNoMatchingRule  DepositSource = "no_matching_rule"
	DepositRuleUnavailable DepositSource = "rule_source_unavailable"
)

// DepositInfo is the resolved deposit. When RuleApplied is false the
// percentage is the default and Estimated is set, so callers can show it as
// an estimate rather than a confirmed rule.
type DepositInfo struct {
	Percentage  float64
	DaysBefore  int
	RuleApplied bool
	Estimated   bool
	Source      DepositSource
	Threshold   *int
}

// ResolveDeposit picks the rule with the largest threshold not above
// daysBeforeEvent. A rule with threshold 30 covers 30..(next threshold - 1).
// Boundary values resolve to exactly one rule.
func ResolveDeposit(rules []domain.DepositRule, daysBeforeEvent int) DepositInfo {
	sorted := append([]domain.DepositRule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DaysBeforeThreshold > sorted[j].DaysBeforeThreshold
	})

	for _, r := range sorted {
		if r.DaysBeforeThreshold <= daysBeforeEvent {
			threshold := r.DaysBeforeThreshold
			return DepositInfo{
				Percentage:  r.Percentage,
				DaysBefore:  daysBeforeEvent,
				RuleApplied: true,
				Source:      DepositFromRule,
				Threshold:   &threshold,
			}
		}
	}

	return fallback(daysBeforeEvent, DepositNoMatchingRule)
}

// FallbackDeposit is used when the rule source could not be reached.
func FallbackDeposit(daysBeforeEvent int) DepositInfo {
	return fallback(daysBeforeEvent, DepositRuleUnavailable)
}

func fallback(days int, source DepositSource) DepositInfo {
	return DepositInfo{
		Percentage: DefaultDepositPercentage,
		DaysBefore: days,
		Estimated:  true,
		Source:     source,
	}
}

// DaysUntil counts calendar days from now to the event date, in the event's
// location. Past events give a negative number.
func DaysUntil(eventDate, now time.Time) int {
	loc := eventDate.Location()
	n := now.In(loc)
	event := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
	return int(event.Sub(today).Hours() / 24)
}

// DepositAmount applies a percentage to a total.
func DepositAmount(total float64, info DepositInfo) float64 {
	return roundMoney(total * info.Percentage / 100)
}
