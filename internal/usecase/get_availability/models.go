package get_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
)

// Request модель запроса на получение сетки доступности
type Request struct {
	ClientID string    // Канал вытеснения (X-Client-ID); пустой - без вытеснения
	VenueID  int64     // ID площадки
	Date     time.Time // Дата (без времени)
}

// Response сетка слотов площадки на дату
// Одна модель занятости используется и формой бронирования, и сеткой.
type Response struct {
	VenueID     int64
	Date        time.Time
	StepMinutes int
	Slots       []availability.SlotClassification
	Stats       availability.Stats
	Overrides   []availability.OverrideRelation
}
