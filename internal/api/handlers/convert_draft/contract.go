package convert_draft

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts/models"
)

type DraftService interface {
	Convert(ctx context.Context, draftID, userID int64) (*models.ConvertResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
