package check_conflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
)

const conflictSourceCheck = "check"

// UseCase предварительная проверка пересечения интервала с буферами
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, venueRepo VenueRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute проверяет конфликт без записи. Окончательное решение принимает транзакция создания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Площадка должна существовать
	if _, err := uc.venueRepo.GetByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CheckConflict: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Снимок занятых бронирований на дату
	existing, err := uc.bookingRepo.GetByVenueAndDate(ctx, domain.VenueBookingsFilter{
		VenueID: req.VenueID,
		Date:    req.Date,
	})
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Поиск конфликтов
	conflicts := availability.FindConflicts(availability.ConflictQuery{
		Start:            req.StartTime,
		End:              req.EndTime,
		SetupMinutes:     req.SetupMinutes,
		BreakdownMinutes: req.BreakdownMinutes,
		ExcludeBookingID: req.ExcludeBookingID,
		OverrideEnabled:  req.OverrideEnabled,
	}, existing)

	ids := make([]int64, len(conflicts))
	for i, c := range conflicts {
		ids[i] = c.ID
	}

	if len(ids) > 0 {
		uc.metrics.IncConflict(conflictSourceCheck)
		uc.logger.Info("CheckConflict: venue=%d %s-%s conflicts with %v", req.VenueID, req.StartTime, req.EndTime, ids)
	}

	return &Response{
		HasConflict:           len(ids) > 0,
		ConflictingBookingIDs: ids,
	}, nil
}
