package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwn(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVenueDay возвращает бронирования площадки на дату в порядке наложения для сетки:
// обычные бронирования снизу, override поверх (новые выше), со связями override.
func (s *Service) GetVenueDay(ctx context.Context, venueID int64, date time.Time) (*models.VenueDayResponse, error) {
	s.logger.Info("GetVenueDay: venue=%d, date=%s", venueID, date.Format(domain.DateFormat))

	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenueDay: venue=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenueDay: venue repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetVenueDay - venue repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByVenueAndDate(ctx, domain.VenueBookingsFilter{
		VenueID: venueID,
		Date:    date,
	})
	if err != nil {
		s.logger.Error("GetVenueDay: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetVenueDay - repository error: %v", ErrInternal, err)
	}

	stacked := availability.StackOrder(bookings)
	relations := availability.ResolveOverrides(bookings)

	return models.FromStackOrder(venueID, date, stacked, relations), nil
}

// Cancel отменяет бронирование владельцем; слот освобождается сразу
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getOwn(ctx, "Cancel", bookingID, userID)
	if err != nil {
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// getOwn загружает бронирование и проверяет владельца
func (s *Service) getOwn(ctx context.Context, op string, id, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
