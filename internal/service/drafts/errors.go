package drafts

import (
	"errors"
	"fmt"
)

var (
	// ErrDraftNotFound возвращается, когда черновик не найден
	ErrDraftNotFound = errors.New("draft not found")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrNotDraft возвращается, когда запись не является черновиком (переход запрещен)
	ErrNotDraft = errors.New("booking is not a draft")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyConverted возвращается при повторной конвертации черновика
	ErrAlreadyConverted = errors.New("draft already converted")

	// ErrBookingConflict возвращается, когда время черновика пересекается с существующими бронированиями
	ErrBookingConflict = errors.New("booking conflicts with existing bookings")

	// ErrDraftCleanupFailed не ошибка операции: только предупреждение о неудаленном черновике
	ErrDraftCleanupFailed = errors.New("draft cleanup failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts service: internal error")
)

// ConflictError несет ID конфликтующих бронирований
type ConflictError struct {
	BookingIDs []int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %v", ErrBookingConflict, e.BookingIDs)
}

func (e *ConflictError) Unwrap() error {
	return ErrBookingConflict
}
