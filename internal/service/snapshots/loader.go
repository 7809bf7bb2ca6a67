package snapshots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/lastfetch"
)

// Loader загружает снимок бронирований площадки на дату.
// Загрузки одного канала (клиента) подчиняются правилу "побеждает последняя начатая":
// новая загрузка отменяет предыдущую, а результат вытесненной отбрасывается.
type Loader struct {
	repo      BookingRepository
	scheduler *lastfetch.Scheduler
	timeout   time.Duration
	logger    Logger
}

// NewLoader создает загрузчик снимков; timeout <= 0 отключает ограничение по времени
func NewLoader(repo BookingRepository, timeout time.Duration, metrics Metrics, logger Logger) *Loader {
	scheduler := lastfetch.New(lastfetch.WithDiscardHook(func(channel string) {
		metrics.IncStaleFetch()
		logger.Info("Load: discarded stale snapshot for channel=%s", channel)
	}))

	return &Loader{
		repo:      repo,
		scheduler: scheduler,
		timeout:   timeout,
		logger:    logger,
	}
}

// Load возвращает занимающие площадку бронирования (pending, confirmed) на дату.
// Пустой channel отключает вытеснение.
func (l *Loader) Load(ctx context.Context, channel string, venueID int64, date time.Time) ([]*domain.Booking, error) {
	filter := domain.VenueBookingsFilter{
		VenueID: venueID,
		Date:    date,
	}

	bookings, err := lastfetch.Do(l.scheduler, ctx, channel, func(ctx context.Context) ([]*domain.Booking, error) {
		if l.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, l.timeout)
			defer cancel()
		}
		return l.repo.GetByVenueAndDate(ctx, filter)
	})

	if err != nil {
		if errors.Is(err, ErrStaleFetchDiscarded) {
			return nil, err
		}
		l.logger.Error("Load: failed to load bookings for venue=%d, date=%s: %v",
			venueID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// InFlight количество незавершенных загрузок
func (l *Loader) InFlight() int {
	return l.scheduler.InFlight()
}
