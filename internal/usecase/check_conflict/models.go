package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Request модель запроса на проверку конфликта
type Request struct {
	VenueID          int64
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	SetupMinutes     int
	BreakdownMinutes int
	ExcludeBookingID int64 // бронирование, которое редактируется (0 - нет)
	OverrideEnabled  bool
}

// Response результат проверки
type Response struct {
	HasConflict           bool
	ConflictingBookingIDs []int64
}
