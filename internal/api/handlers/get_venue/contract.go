package get_venue

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

type VenueService interface {
	GetVenue(ctx context.Context, venueID int64) (*models.VenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
