package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования (буферы в часах)
type BookingResponse struct {
	ID            int64   `json:"id"`
	VenueID       int64   `json:"venueId"`
	UserID        int64   `json:"userId"`
	Date          string  `json:"date"`      // "2026-06-10"
	StartTime     string  `json:"startTime"` // "14:00"
	EndTime       string  `json:"endTime"`
	SetupTime     float64 `json:"setupTime"`
	BreakdownTime float64 `json:"breakdownTime"`
	IsOverride    bool    `json:"isOverride"`
	Status        string  `json:"status"`
	SourceDraftID *int64  `json:"sourceDraftId,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StackedBookingResponse бронирование в сетке с порядком отрисовки
type StackedBookingResponse struct {
	BookingResponse
	ZIndex               int     `json:"zIndex"`
	OverriddenBookingIDs []int64 `json:"overriddenBookingIds,omitempty"`
}

// VenueDayResponse бронирования площадки на дату в порядке наложения
type VenueDayResponse struct {
	VenueID  int64                    `json:"venueId"`
	Date     string                   `json:"date"`
	Bookings []StackedBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		VenueID:       b.VenueID,
		UserID:        b.UserID,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		SetupTime:     domain.MinutesToHours(b.SetupMinutes),
		BreakdownTime: domain.MinutesToHours(b.BreakdownMinutes),
		IsOverride:    b.IsOverride,
		Status:        string(b.Status),
		SourceDraftID: b.SourceDraftID,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromStackOrder конвертирует порядок наложения и связи override в DTO
func FromStackOrder(venueID int64, date time.Time, stacked []availability.StackedBooking, relations []availability.OverrideRelation) *VenueDayResponse {
	overridden := make(map[int64][]int64, len(relations))
	for _, rel := range relations {
		overridden[rel.OverrideBookingID] = rel.OverriddenBookingIDs
	}

	resp := &VenueDayResponse{
		VenueID:  venueID,
		Date:     date.Format(domain.DateFormat),
		Bookings: make([]StackedBookingResponse, 0, len(stacked)),
	}

	for _, sb := range stacked {
		resp.Bookings = append(resp.Bookings, StackedBookingResponse{
			BookingResponse:      *FromDomainBooking(sb.Booking),
			ZIndex:               sb.ZIndex,
			OverriddenBookingIDs: overridden[sb.Booking.ID],
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
