package snapshots

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByVenueAndDate(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error)
}

// Metrics счетчик отброшенных устаревших загрузок
type Metrics interface {
	IncStaleFetch()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
