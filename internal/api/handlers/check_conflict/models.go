package check_conflict

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	checkConflict "github.com/m04kA/SMC-VenueBookingService/internal/usecase/check_conflict"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// CheckConflictRequest HTTP request model (буферы в часах)
type CheckConflictRequest struct {
	Date                 string  `json:"date"`
	StartTime            string  `json:"startTime"`
	EndTime              string  `json:"endTime"`
	SetupTime            float64 `json:"setupTime"`
	BreakdownTime        float64 `json:"breakdownTime"`
	ExcludeBookingID     int64   `json:"excludeBookingId,omitempty"`
	OverrideAvailability bool    `json:"overrideAvailability"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HasConflict           bool    `json:"hasConflict"`
	ConflictingBookingIDs []int64 `json:"conflictingBookingIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictRequest) ToUseCaseRequest(venueID int64) (*checkConflict.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %v", err)
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &checkConflict.Request{
		VenueID:          venueID,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		SetupMinutes:     domain.HoursToMinutes(r.SetupTime),
		BreakdownMinutes: domain.HoursToMinutes(r.BreakdownTime),
		ExcludeBookingID: r.ExcludeBookingID,
		OverrideEnabled:  r.OverrideAvailability,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *CheckConflictResponse {
	ids := resp.ConflictingBookingIDs
	if ids == nil {
		ids = []int64{}
	}
	return &CheckConflictResponse{
		HasConflict:           resp.HasConflict,
		ConflictingBookingIDs: ids,
	}
}
