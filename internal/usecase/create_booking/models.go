package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID               int64            // ID пользователя (X-User-ID)
	VenueID              int64            // ID площадки
	Date                 time.Time        // Дата бронирования (без времени)
	StartTime            types.TimeString // Начало, например "14:00"
	EndTime              types.TimeString // Конец, например "18:00"
	SetupMinutes         int              // Буфер подготовки перед началом
	BreakdownMinutes     int              // Буфер демонтажа после окончания
	OverrideAvailability bool             // Административный обход проверки конфликтов
	Notes                *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	VenueID          int64
	UserID           int64
	Date             time.Time
	StartTime        types.TimeString
	EndTime          types.TimeString
	SetupMinutes     int
	BreakdownMinutes int
	IsOverride       bool
	Status           string
	Notes            *string

	// Бронирования, поверх которых легло override-бронирование
	OverriddenBookingIDs []int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
