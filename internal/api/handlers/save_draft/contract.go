package save_draft

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts/models"
)

type DraftService interface {
	SaveDraft(ctx context.Context, req *models.SaveDraftRequest) (*models.DraftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
