package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// SnapshotLoader загрузчик снимка бронирований площадки на дату.
// Загрузки одного канала вытесняют друг друга: побеждает последняя начатая.
type SnapshotLoader interface {
	Load(ctx context.Context, channel string, venueID int64, date time.Time) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
