package get_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VenueID     int64              `json:"venueId"`
	Date        string             `json:"date"`
	StepMinutes int                `json:"stepMinutes"`
	Slots       []Slot             `json:"slots"`
	Stats       Stats              `json:"stats"`
	Overrides   []OverrideRelation `json:"overrides"`
}

// Slot классификация одной временной точки
type Slot struct {
	Time                 string  `json:"time"`
	Status               string  `json:"status"` // available, occupied, buffered
	Bookable             bool    `json:"bookable"`
	OverridingBookingIDs []int64 `json:"overridingBookingIds,omitempty"`
}

// Stats сводка по слотам
type Stats struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Buffer    int `json:"buffer"`
}

// OverrideRelation override-бронирование и бронирования под ним
type OverrideRelation struct {
	OverrideBookingID    int64   `json:"overrideBookingId"`
	OverriddenBookingIDs []int64 `json:"overriddenBookingIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:                 slot.Time.String(),
			Status:               string(slot.Status),
			Bookable:             slot.IsBookable(),
			OverridingBookingIDs: slot.OverridingBookingIDs,
		}
	}

	overrides := make([]OverrideRelation, len(resp.Overrides))
	for i, rel := range resp.Overrides {
		overrides[i] = OverrideRelation{
			OverrideBookingID:    rel.OverrideBookingID,
			OverriddenBookingIDs: rel.OverriddenBookingIDs,
		}
	}

	return &AvailabilityResponse{
		VenueID:     resp.VenueID,
		Date:        resp.Date.Format(domain.DateFormat),
		StepMinutes: resp.StepMinutes,
		Slots:       slots,
		Stats: Stats{
			Available: resp.Stats.Available,
			Booked:    resp.Stats.Booked,
			Buffer:    resp.Stats.Buffer,
		},
		Overrides: overrides,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(clientID string, venueID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ClientID: clientID,
		VenueID:  venueID,
		Date:     date,
	}, nil
}
