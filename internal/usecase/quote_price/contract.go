package quote_price

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок и тарифов
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetPricingRules(ctx context.Context, venueID int64) ([]domain.PricingRule, error)
}

// DepositRulesProvider источник правил депозита (внешний сервис с кэшем)
type DepositRulesProvider interface {
	GetDepositRulesWithGracefulDegradation(ctx context.Context, venueID int64) ([]domain.DepositRule, error)
}

// Metrics счетчик расчетов депозита по умолчанию
type Metrics interface {
	IncDepositFallback()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
