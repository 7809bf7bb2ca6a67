package check_conflict

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ExcludeBookingID < 0 {
		return fmt.Errorf("%w: excludeBookingID must not be negative", ErrInvalidInput)
	}

	candidate := domain.Booking{
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		SetupMinutes:     req.SetupMinutes,
		BreakdownMinutes: req.BreakdownMinutes,
	}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
