package quote_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/pricing"
)

// UseCase use case расчета стоимости аренды и депозита
type UseCase struct {
	venueRepo    VenueRepository
	deposits     DepositRulesProvider
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venueRepo VenueRepository, deposits DepositRulesProvider, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		venueRepo:    venueRepo,
		deposits:     deposits,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute рассчитывает цену по тарифу дня недели и процент депозита.
// Отсутствие тарифа не ошибка: Price.Priced = false.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Площадка
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("QuotePrice: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Дни до события считаются в часовом поясе площадки
	loc := venue.Location()
	eventDate := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	days := pricing.DaysUntil(eventDate, uc.timeProvider.Now())
	if days < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date.Format("2006-01-02"))
	}

	// 4. Цена
	table, err := uc.venueRepo.GetPricingRules(ctx, req.VenueID)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to get pricing rules for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	quote := pricing.ResolvePrice(table, eventDate, req.DurationHours, req.Mode)
	if !quote.Priced {
		uc.logger.Info("QuotePrice: no pricing rule for venue id=%d on %s", req.VenueID, eventDate.Weekday())
	}

	// 5. Депозит: при недоступности источника правил - процент по умолчанию
	var deposit pricing.DepositInfo
	rules, err := uc.deposits.GetDepositRulesWithGracefulDegradation(ctx, req.VenueID)
	if err != nil {
		uc.logger.Warn("QuotePrice: deposit rules unavailable for venue id=%d, using default: %v", req.VenueID, err)
		deposit = pricing.FallbackDeposit(days)
	} else {
		deposit = pricing.ResolveDeposit(rules, days)
	}

	if !deposit.RuleApplied {
		uc.metrics.IncDepositFallback()
	}

	return &Response{
		VenueID:       req.VenueID,
		Date:          req.Date,
		DurationHours: req.DurationHours,
		Price:         quote,
		Deposit:       deposit,
		DepositAmount: pricing.DepositAmount(quote.Total, deposit),
	}, nil
}
