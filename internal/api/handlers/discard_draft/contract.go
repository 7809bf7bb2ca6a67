package discard_draft

import (
	"context"
)

type DraftService interface {
	Discard(ctx context.Context, draftID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
