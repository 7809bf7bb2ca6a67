package get_availability

import (
	"errors"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/snapshots"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrStaleFetchDiscarded запрос вытеснен более новым запросом того же клиента
	ErrStaleFetchDiscarded = snapshots.ErrStaleFetchDiscarded

	// ErrInvalidVenueHours возвращается, когда часы работы площадки некорректны
	ErrInvalidVenueHours = errors.New("venue has invalid operating hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
