package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("create_booking: venue not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrOutsideOperatingHours возвращается, когда начало вне часов работы площадки
	ErrOutsideOperatingHours = errors.New("create_booking: start is outside venue operating hours")

	// ErrTooLateToBook возвращается, когда время начала сегодня уже прошло
	ErrTooLateToBook = errors.New("create_booking: too late to book this time")

	// ErrBookingConflict возвращается, когда интервал с буферами пересекается с существующими бронированиями
	ErrBookingConflict = errors.New("create_booking: booking conflicts with existing bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несет ID конфликтующих бронирований для ответа 409
type ConflictError struct {
	BookingIDs []int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %v", ErrBookingConflict, e.BookingIDs)
}

func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
