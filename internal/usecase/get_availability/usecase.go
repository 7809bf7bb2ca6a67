package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
)

// UseCase use case для получения сетки доступности площадки
type UseCase struct {
	venueRepo   VenueRepository
	loader      SnapshotLoader
	defaultStep int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// defaultStep применяется к площадкам без собственного шага слотов.
func NewUseCase(
	venueRepo VenueRepository,
	loader SnapshotLoader,
	defaultStep int,
	logger Logger,
) *UseCase {
	if defaultStep <= 0 {
		defaultStep = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		venueRepo:   venueRepo,
		loader:      loader,
		defaultStep: defaultStep,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: venue=%d, date=%s, client=%q",
		req.VenueID, req.Date.Format(domain.DateFormat), req.ClientID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetAvailability: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetAvailability: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.HasValidHours() {
		uc.logger.Error("GetAvailability: venue id=%d has invalid hours %d-%d", venue.ID, venue.OpenHour, venue.CloseHour)
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidVenueHours, venue.OpenHour, venue.CloseHour)
	}

	// 3. Генерируем слоты (час закрытия включается как последний старт)
	step := venue.SlotStepMinutes
	if step <= 0 {
		step = uc.defaultStep
	}
	slots := availability.VenueDaySlots(venue.OpenHour, venue.CloseHour, step)

	// 4. Загружаем снимок бронирований; устаревшая загрузка отбрасывается
	bookings, err := uc.loader.Load(ctx, req.ClientID, req.VenueID, req.Date)
	if err != nil {
		if errors.Is(err, ErrStaleFetchDiscarded) {
			uc.logger.Info("GetAvailability: superseded request for venue=%d, client=%q", req.VenueID, req.ClientID)
			return nil, err
		}
		uc.logger.Error("GetAvailability: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// 5. Классифицируем слоты по одному снимку
	occupancy := availability.BuildOccupancy(slots, bookings)

	uc.logger.Info("GetAvailability: venue=%d, date=%s: %d slots (available=%d, booked=%d, buffer=%d), %d overrides",
		req.VenueID, req.Date.Format(domain.DateFormat), len(occupancy.Slots),
		occupancy.Stats.Available, occupancy.Stats.Booked, occupancy.Stats.Buffer, len(occupancy.Overrides))

	return &Response{
		VenueID:     req.VenueID,
		Date:        req.Date,
		StepMinutes: step,
		Slots:       occupancy.Slots,
		Stats:       occupancy.Stats,
		Overrides:   occupancy.Overrides,
	}, nil
}
