package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

func depositRules() []domain.DepositRule {
	// Намеренно не отсортированы
	return []domain.DepositRule{
		{DaysBeforeThreshold: 7, Percentage: 50},
		{DaysBeforeThreshold: 60, Percentage: 10},
		{DaysBeforeThreshold: 0, Percentage: 100},
		{DaysBeforeThreshold: 30, Percentage: 25},
	}
}

func TestResolveDeposit_Boundaries(t *testing.T) {
	tests := []struct {
		days      int
		want      float64
		threshold int
	}{
		{days: 120, want: 10, threshold: 60},
		{days: 60, want: 10, threshold: 60},
		{days: 59, want: 25, threshold: 30},
		{days: 30, want: 25, threshold: 30},
		{days: 29, want: 50, threshold: 7},
		{days: 7, want: 50, threshold: 7},
		{days: 6, want: 100, threshold: 0},
		{days: 0, want: 100, threshold: 0},
	}

	for _, tt := range tests {
		got := ResolveDeposit(depositRules(), tt.days)
		assert.Equal(t, tt.want, got.Percentage, "days=%d", tt.days)
		assert.True(t, got.RuleApplied)
		assert.False(t, got.Estimated)
		assert.Equal(t, DepositFromRule, got.Source)
		require.NotNil(t, got.Threshold)
		assert.Equal(t, tt.threshold, *got.Threshold)
		assert.Equal(t, tt.days, got.DaysBefore)
	}
}

func TestResolveDeposit_OrderIndependent(t *testing.T) {
	rules := depositRules()
	reversed := make([]domain.DepositRule, len(rules))
	for i := range rules {
		reversed[len(rules)-1-i] = rules[i]
	}

	for _, days := range []int{0, 7, 30, 45, 60, 90} {
		assert.Equal(t, ResolveDeposit(rules, days), ResolveDeposit(reversed, days))
	}
}

func TestResolveDeposit_NoMatchFallsBack(t *testing.T) {
	rules := []domain.DepositRule{{DaysBeforeThreshold: 14, Percentage: 20}}

	got := ResolveDeposit(rules, 3)

	assert.Equal(t, DefaultDepositPercentage, got.Percentage)
	assert.False(t, got.RuleApplied)
	assert.True(t, got.Estimated)
	assert.Equal(t, DepositNoMatchingRule, got.Source)
	assert.Nil(t, got.Threshold)
}

func TestResolveDeposit_FallbackDistinctFromConfigured30(t *testing.T) {
	configured := ResolveDeposit([]domain.DepositRule{{DaysBeforeThreshold: 0, Percentage: 30}}, 5)
	fallback := FallbackDeposit(5)

	assert.Equal(t, configured.Percentage, fallback.Percentage)
	assert.NotEqual(t, configured, fallback)
	assert.True(t, configured.RuleApplied)
	assert.False(t, fallback.RuleApplied)
	assert.Equal(t, DepositRuleUnavailable, fallback.Source)
}

func TestResolveDeposit_EmptyRules(t *testing.T) {
	got := ResolveDeposit(nil, 10)
	assert.True(t, got.Estimated)
	assert.Equal(t, DefaultDepositPercentage, got.Percentage)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 5, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysUntil(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 1, DaysUntil(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 30, DaysUntil(time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, -1, DaysUntil(time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestDepositAmount(t *testing.T) {
	assert.Equal(t, 37.5, DepositAmount(150, DepositInfo{Percentage: 25}))
}
