package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if req.SetupMinutes > domain.MaxBufferMinutes || req.BreakdownMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffers must not exceed %d minutes", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// start < end, буферы неотрицательны
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

// validateDate проверяет, что дата не в прошлом и не дальше горизонта бронирования
func validateDate(bookingDate time.Time, now time.Time, maxDaysAhead int) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, maxDaysAhead)
	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.UTC)

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxDaysAhead)
	}

	return nil
}

// validateBookingTime проверяет, что начало бронирования на сегодня еще не прошло
func validateBookingTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if startTime.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s has already passed", ErrTooLateToBook, startTime)
	}

	return nil
}

// validateOperatingHours проверяет начало по сетке площадки: от часа открытия до часа закрытия включительно
func validateOperatingHours(venue *domain.Venue, startTime types.TimeString) error {
	start := startTime.Minutes()
	if start < venue.OpenHour*60 || start > venue.CloseHour*60 {
		return fmt.Errorf("%w: %s not in %02d:00-%02d:00", ErrOutsideOperatingHours, startTime, venue.OpenHour, venue.CloseHour)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
