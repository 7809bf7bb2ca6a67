package events

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Type тип события жизненного цикла бронирования
type Type string

const (
	TypeBookingCreated Type = "booking.created"
	TypeDraftSaved     Type = "draft.saved"
	TypeDraftConverted Type = "draft.converted"
	TypeDraftDiscarded Type = "draft.discarded"
)

// Event событие, публикуемое в Kafka
type Event struct {
	ID            string    `json:"event_id"`
	Type          Type      `json:"event_type"`
	BookingID     int64     `json:"booking_id"`
	VenueID       int64     `json:"venue_id"`
	UserID        int64     `json:"user_id"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	IsOverride    bool      `json:"is_override"`
	SourceDraftID *int64    `json:"source_draft_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// NewBookingEvent собирает событие из бронирования; ID и OccurredAt проставляет публикатор
func NewBookingEvent(t Type, b *domain.Booking) Event {
	return Event{
		Type:          t,
		BookingID:     b.ID,
		VenueID:       b.VenueID,
		UserID:        b.UserID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		IsOverride:    b.IsOverride,
		SourceDraftID: b.SourceDraftID,
	}
}
