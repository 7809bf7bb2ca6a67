package quote_price

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

const maxDurationHours = 24

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationHours <= 0 || req.DurationHours > maxDurationHours {
		return fmt.Errorf("%w: durationHours must be in (0, %d]", ErrInvalidInput, maxDurationHours)
	}

	if req.Mode != "" {
		if _, ok := domain.ParsePricingMode(string(req.Mode)); !ok {
			return fmt.Errorf("%w: unknown pricing mode %q", ErrInvalidInput, req.Mode)
		}
	}

	return nil
}
