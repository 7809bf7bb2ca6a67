package venues

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("venues service: internal error")
)
