package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/infra/events"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
)

const conflictSourceCreate = "create"

// UseCase use case для создания бронирования площадки
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, date=%s, %s-%s, setup=%dm, breakdown=%dm, override=%t",
		req.UserID, req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime,
		req.SetupMinutes, req.BreakdownMinutes, req.OverrideAvailability)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	// 3. Дата и время относительно "сейчас" в часовом поясе площадки
	now := uc.timeProvider.Now().In(venue.Location())

	if err := validateDate(req.Date, now, domain.MaxBookingDaysAhead); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	if err := validateBookingTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	if err := validateOperatingHours(venue, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		VenueID:          req.VenueID,
		UserID:           req.UserID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		SetupMinutes:     req.SetupMinutes,
		BreakdownMinutes: req.BreakdownMinutes,
		IsOverride:       req.OverrideAvailability,
		Status:           domain.StatusPending,
		Notes:            req.Notes,
	}

	var (
		result     *domain.Booking
		overridden []int64
	)

	// 4. Проверка конфликтов и создание в сериализуемой транзакции (снимок с FOR UPDATE)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByVenueAndDate(txCtx, domain.VenueBookingsFilter{
			VenueID: req.VenueID,
			Date:    req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflicts := availability.FindConflicts(availability.QueryFromBooking(booking), existing)
		if len(conflicts) > 0 {
			ids := make([]int64, len(conflicts))
			for i, c := range conflicts {
				ids[i] = c.ID
			}
			uc.metrics.IncConflict(conflictSourceCreate)
			uc.logger.Warn("CreateBooking: conflict with bookings %v", ids)
			return &ConflictError{BookingIDs: ids}
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if created.IsOverride {
			for _, o := range availability.FindOverriddenBookings(created, existing) {
				overridden = append(overridden, o.ID)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrBookingConflict) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, result)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                   result.ID,
		VenueID:              result.VenueID,
		UserID:               result.UserID,
		Date:                 result.Date,
		StartTime:            result.StartTime,
		EndTime:              result.EndTime,
		SetupMinutes:         result.SetupMinutes,
		BreakdownMinutes:     result.BreakdownMinutes,
		IsOverride:           result.IsOverride,
		Status:               string(result.Status),
		Notes:                result.Notes,
		OverriddenBookingIDs: overridden,
		CreatedAt:            result.CreatedAt,
		UpdatedAt:            result.UpdatedAt,
	}, nil
}
