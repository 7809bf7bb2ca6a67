package get_venue_day

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetVenueDay(ctx context.Context, venueID int64, date time.Time) (*models.VenueDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
