package get_booking

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// BookingDetailsResponse бронирование вместе с окном, которое оно блокирует на сетке
type BookingDetailsResponse struct {
	models.BookingResponse
	BlockedFrom   string `json:"blockedFrom"`  // начало подготовки
	BlockedUntil  string `json:"blockedUntil"` // конец уборки
	OccupiesVenue bool   `json:"occupiesVenue"`
}

// FromBookingResponse дополняет DTO сервиса окном с буферами.
// Окно обрезается границами суток.
func FromBookingResponse(b *models.BookingResponse) *BookingDetailsResponse {
	start := types.TimeString(b.StartTime).Minutes()
	end := types.TimeString(b.EndTime).Minutes()

	from := start - max(domain.HoursToMinutes(b.SetupTime), 0)
	until := end + max(domain.HoursToMinutes(b.BreakdownTime), 0)

	booking := domain.Booking{Status: domain.BookingStatus(b.Status)}

	return &BookingDetailsResponse{
		BookingResponse: *b,
		BlockedFrom:     types.FromMinutes(max(from, 0)).String(),
		BlockedUntil:    types.FromMinutes(min(until, types.MinutesPerDay-1)).String(),
		OccupiesVenue:   booking.OccupiesVenue(),
	}
}
