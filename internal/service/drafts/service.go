package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts/models"
)

const conflictSourceDraft = "draft_conversion"

// Service жизненный цикл черновиков: draft -> confirmed | deleted
type Service struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

// SaveDraft сохраняет черновик бронирования для продолжения позже
// Черновик не занимает площадку и не проверяется на конфликты.
func (s *Service) SaveDraft(ctx context.Context, req *models.SaveDraftRequest) (*models.DraftResponse, error) {
	s.logger.Info("SaveDraft: user=%d, venue=%d, date=%s, %s-%s",
		req.UserID, req.VenueID, req.Date, req.StartTime, req.EndTime)

	draft, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("SaveDraft: invalid request from user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.venueRepo.GetByID(ctx, draft.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("SaveDraft: venue=%d not found", draft.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("SaveDraft: failed to get venue=%d: %v", draft.VenueID, err)
		return nil, fmt.Errorf("%w: SaveDraft - venue repository error: %v", ErrInternal, err)
	}

	created, err := s.bookingRepo.Create(ctx, draft)
	if err != nil {
		s.logger.Error("SaveDraft: failed to create draft for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: SaveDraft - repository error: %v", ErrInternal, err)
	}

	s.publish(ctx, events.TypeDraftSaved, created)

	s.logger.Info("SaveDraft: draft id=%d saved", created.ID)
	return models.FromDomain(created), nil
}

// Convert превращает черновик в подтвержденное бронирование.
//
// Создание выполняется в сериализуемой транзакции: загрузка черновика, проверка статуса,
// проверка конфликтов (кроме override) и вставка бронирования с source_draft_id.
// Удаление черновика выполняется после коммита; его ошибка не отменяет успешную
// конвертацию и возвращается как предупреждение DraftCleanupFailed.
func (s *Service) Convert(ctx context.Context, draftID, userID int64) (*models.ConvertResponse, error) {
	s.logger.Info("Convert: converting draft id=%d by user=%d", draftID, userID)

	var confirmed *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		draft, err := s.loadOwnDraft(ctx, draftID, userID)
		if err != nil {
			return err
		}

		if !domain.CanTransition(domain.DraftStateOf(draft), domain.DraftStateConfirmed) {
			return fmt.Errorf("%w: id=%d, status=%s", ErrNotDraft, draft.ID, draft.Status)
		}

		candidate := domain.ConfirmedFromDraft(draft)

		if !candidate.IsOverride {
			existing, err := s.bookingRepo.GetByVenueAndDate(ctx, domain.VenueBookingsFilter{
				VenueID: candidate.VenueID,
				Date:    candidate.Date,
			})
			if err != nil {
				return fmt.Errorf("%w: Convert - load existing bookings: %v", ErrInternal, err)
			}

			conflicts := availability.FindConflicts(availability.QueryFromBooking(candidate), existing)
			if len(conflicts) > 0 {
				ids := make([]int64, len(conflicts))
				for i, c := range conflicts {
					ids[i] = c.ID
				}
				s.metrics.IncConflict(conflictSourceDraft)
				return &ConflictError{BookingIDs: ids}
			}
		}

		created, err := s.bookingRepo.Create(ctx, candidate)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrAlreadyConverted) {
				return ErrAlreadyConverted
			}
			return fmt.Errorf("%w: Convert - create booking: %v", ErrInternal, err)
		}

		confirmed = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingConflict):
			s.logger.Warn("Convert: draft id=%d conflicts: %v", draftID, err)
		case errors.Is(err, ErrDraftNotFound), errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrNotDraft), errors.Is(err, ErrAlreadyConverted):
			s.logger.Warn("Convert: draft id=%d rejected: %v", draftID, err)
		default:
			s.logger.Error("Convert: draft id=%d failed: %v", draftID, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: Convert - transaction: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	resp := &models.ConvertResponse{
		Booking:  *models.FromDomain(confirmed),
		Warnings: []models.Warning{},
	}

	if err := s.deleteDraft(ctx, draftID); err != nil {
		cleanupErr := fmt.Errorf("%w: draft_id=%d: %v", ErrDraftCleanupFailed, draftID, err)
		s.metrics.IncDraftCleanupFailure()
		s.logger.Warn("Convert: booking id=%d created, but %v", confirmed.ID, cleanupErr)
		resp.Warnings = append(resp.Warnings, models.Warning{
			Code:    models.WarningDraftCleanupFailed,
			Message: cleanupErr.Error(),
		})
	}

	s.publish(ctx, events.TypeDraftConverted, confirmed)

	s.logger.Info("Convert: draft id=%d converted into booking id=%d", draftID, confirmed.ID)
	return resp, nil
}

// Discard удаляет черновик; повторное удаление считается успехом
func (s *Service) Discard(ctx context.Context, draftID, userID int64) error {
	s.logger.Info("Discard: discarding draft id=%d by user=%d", draftID, userID)

	draft, err := s.loadOwnDraft(ctx, draftID, userID)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			s.logger.Info("Discard: draft id=%d already deleted", draftID)
			return nil
		}
		if !errors.Is(err, ErrInternal) {
			s.logger.Warn("Discard: draft id=%d rejected: %v", draftID, err)
		}
		return err
	}

	if !domain.CanTransition(domain.DraftStateOf(draft), domain.DraftStateDeleted) {
		s.logger.Warn("Discard: record id=%d is not a draft, status=%s", draftID, draft.Status)
		return fmt.Errorf("%w: id=%d, status=%s", ErrNotDraft, draft.ID, draft.Status)
	}

	if err := s.deleteDraft(ctx, draftID); err != nil {
		s.logger.Error("Discard: failed to delete draft id=%d: %v", draftID, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	s.publish(ctx, events.TypeDraftDiscarded, draft)

	s.logger.Info("Discard: draft id=%d deleted", draftID)
	return nil
}

// loadOwnDraft загружает запись и проверяет владельца
func (s *Service) loadOwnDraft(ctx context.Context, draftID, userID int64) (*domain.Booking, error) {
	draft, err := s.bookingRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		return nil, ErrAccessDenied
	}

	return draft, nil
}

// deleteDraft удаляет запись; отсутствие записи - успех
func (s *Service) deleteDraft(ctx context.Context, draftID int64) error {
	err := s.bookingRepo.Delete(ctx, draftID)
	if err == nil || errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return nil
	}
	return err
}

func (s *Service) publish(ctx context.Context, t events.Type, b *domain.Booking) {
	if err := s.publisher.Publish(ctx, events.NewBookingEvent(t, b)); err != nil {
		s.logger.Warn("failed to publish %s for booking id=%d: %v", t, b.ID, err)
	}
}
