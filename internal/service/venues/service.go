package venues

import (
	"context"
	"errors"
	"fmt"

	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

// Service сервис чтения площадок и их тарифов
type Service struct {
	venueRepo VenueRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(venueRepo VenueRepository, logger Logger) *Service {
	return &Service{
		venueRepo: venueRepo,
		logger:    logger,
	}
}

// GetVenue возвращает часы работы, шаг слотов и таблицу тарифов площадки
func (s *Service) GetVenue(ctx context.Context, venueID int64) (*models.VenueResponse, error) {
	s.logger.Info("GetVenue: fetching venue=%d", venueID)

	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetVenue: venue=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetVenue - repository error: %v", ErrInternal, err)
	}

	rules, err := s.venueRepo.GetPricingRules(ctx, venueID)
	if err != nil {
		s.logger.Error("GetVenue: pricing repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: GetVenue - pricing repository error: %v", ErrInternal, err)
	}

	return models.FromDomain(venue, rules), nil
}
