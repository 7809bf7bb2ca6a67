package quote_price

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/depositservice"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/pricing"
)

// 2026-06-10 - среда
var (
	testNow   = time.Date(2026, 5, 11, 9, 0, 0, 0, time.UTC)
	eventDate = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
)

func ptr(v float64) *float64 { return &v }

type fakeVenueRepo struct {
	rules    []domain.PricingRule
	rulesErr error
}

func (r *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if id != 1 {
		return nil, venueRepo.ErrVenueNotFound
	}
	return &domain.Venue{ID: 1, OpenHour: 8, CloseHour: 22}, nil
}

func (r *fakeVenueRepo) GetPricingRules(context.Context, int64) ([]domain.PricingRule, error) {
	return r.rules, r.rulesErr
}

type fakeDeposits struct {
	rules []domain.DepositRule
	err   error
}

func (f *fakeDeposits) GetDepositRulesWithGracefulDegradation(context.Context, int64) ([]domain.DepositRule, error) {
	return f.rules, f.err
}

type fakeMetrics struct {
	fallbacks int
}

func (m *fakeMetrics) IncDepositFallback() { m.fallbacks++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func wednesdayHourly() []domain.PricingRule {
	return []domain.PricingRule{
		{VenueID: 1, DayOfWeek: time.Wednesday, Mode: domain.PricingBoth, HourlyRate: ptr(150), FullDayRate: ptr(1000), MinimumHours: ptr(3)},
	}
}

func standardDeposits() []domain.DepositRule {
	return []domain.DepositRule{
		{DaysBeforeThreshold: 60, Percentage: 25},
		{DaysBeforeThreshold: 30, Percentage: 50},
		{DaysBeforeThreshold: 7, Percentage: 100},
	}
}

func newUseCase(repo *fakeVenueRepo, deposits *fakeDeposits, m *fakeMetrics) *UseCase {
	uc := NewUseCase(repo, deposits, m, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_HourlyWithRule(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeVenueRepo{rules: wednesdayHourly()}, &fakeDeposits{rules: standardDeposits()}, m)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: eventDate, DurationHours: 4})
	require.NoError(t, err)

	assert.True(t, resp.Price.Priced)
	assert.Equal(t, domain.PricingHourly, resp.Price.Mode)
	assert.Equal(t, 600.0, resp.Price.Total)
	assert.True(t, resp.Price.MeetsMinimum)

	// 30 дней до события - ровно граница правила 30
	assert.Equal(t, 30, resp.Deposit.DaysBefore)
	assert.True(t, resp.Deposit.RuleApplied)
	assert.Equal(t, 50.0, resp.Deposit.Percentage)
	require.NotNil(t, resp.Deposit.Threshold)
	assert.Equal(t, 30, *resp.Deposit.Threshold)
	assert.Equal(t, 300.0, resp.DepositAmount)
	assert.Zero(t, m.fallbacks)
}

func TestExecute_FullDay(t *testing.T) {
	uc := newUseCase(&fakeVenueRepo{rules: wednesdayHourly()}, &fakeDeposits{rules: standardDeposits()}, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: eventDate, DurationHours: 2, Mode: domain.PricingFullDay})
	require.NoError(t, err)
	assert.Equal(t, domain.PricingFullDay, resp.Price.Mode)
	assert.Equal(t, 1000.0, resp.Price.Total)
}

func TestExecute_NoPricingRule(t *testing.T) {
	uc := newUseCase(&fakeVenueRepo{}, &fakeDeposits{rules: standardDeposits()}, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: eventDate, DurationHours: 4})
	require.NoError(t, err)
	assert.False(t, resp.Price.Priced)
	assert.Zero(t, resp.Price.Total)
	assert.Zero(t, resp.DepositAmount)
}

func TestExecute_DepositSourceDegraded(t *testing.T) {
	m := &fakeMetrics{}
	deposits := &fakeDeposits{err: depositservice.ErrServiceDegraded}
	uc := newUseCase(&fakeVenueRepo{rules: wednesdayHourly()}, deposits, m)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: eventDate, DurationHours: 4})
	require.NoError(t, err)
	assert.False(t, resp.Deposit.RuleApplied)
	assert.True(t, resp.Deposit.Estimated)
	assert.Equal(t, pricing.DepositRuleUnavailable, resp.Deposit.Source)
	assert.Equal(t, pricing.DefaultDepositPercentage, resp.Deposit.Percentage)
	assert.Equal(t, 1, m.fallbacks)
}

func TestExecute_NoMatchingDepositRule(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeVenueRepo{rules: wednesdayHourly()}, &fakeDeposits{rules: standardDeposits()}, m)
	uc.timeProvider = fixedTime{now: time.Date(2026, 6, 8, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 1, Date: eventDate, DurationHours: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Deposit.DaysBefore)
	assert.Equal(t, pricing.DepositNoMatchingRule, resp.Deposit.Source)
	assert.True(t, resp.Deposit.Estimated)
	assert.Equal(t, 1, m.fallbacks)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		repo    *fakeVenueRepo
		wantErr error
	}{
		{
			name:    "zero duration",
			req:     &Request{VenueID: 1, Date: eventDate},
			repo:    &fakeVenueRepo{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown mode",
			req:     &Request{VenueID: 1, Date: eventDate, DurationHours: 2, Mode: "weekly"},
			repo:    &fakeVenueRepo{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "venue not found",
			req:     &Request{VenueID: 5, Date: eventDate, DurationHours: 2},
			repo:    &fakeVenueRepo{},
			wantErr: ErrVenueNotFound,
		},
		{
			name:    "date in past",
			req:     &Request{VenueID: 1, Date: testNow.AddDate(0, 0, -1), DurationHours: 2},
			repo:    &fakeVenueRepo{},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "pricing rules error",
			req:     &Request{VenueID: 1, Date: eventDate, DurationHours: 2},
			repo:    &fakeVenueRepo{rulesErr: errors.New("db down")},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.repo, &fakeDeposits{}, &fakeMetrics{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
