package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest HTTP request model (буферы в часах)
type CreateBookingRequest struct {
	VenueID              int64   `json:"venueId"`
	Date                 string  `json:"date"`      // "2026-06-10"
	StartTime            string  `json:"startTime"` // "14:00"
	EndTime              string  `json:"endTime"`   // "18:00"
	SetupTime            float64 `json:"setupTime"`
	BreakdownTime        float64 `json:"breakdownTime"`
	OverrideAvailability bool    `json:"overrideAvailability"`
	Notes                *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   int64   `json:"id"`
	VenueID              int64   `json:"venueId"`
	UserID               int64   `json:"userId"`
	Date                 string  `json:"date"`
	StartTime            string  `json:"startTime"`
	EndTime              string  `json:"endTime"`
	SetupTime            float64 `json:"setupTime"`
	BreakdownTime        float64 `json:"breakdownTime"`
	IsOverride           bool    `json:"isOverride"`
	Status               string  `json:"status"`
	OverriddenBookingIDs []int64 `json:"overriddenBookingIds,omitempty"`
	Notes                *string `json:"notes,omitempty"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", errInvalidTime, err)
	}
	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		UserID:               userID,
		VenueID:              r.VenueID,
		Date:                 date,
		StartTime:            startTime,
		EndTime:              endTime,
		SetupMinutes:         domain.HoursToMinutes(r.SetupTime),
		BreakdownMinutes:     domain.HoursToMinutes(r.BreakdownTime),
		OverrideAvailability: r.OverrideAvailability,
		Notes:                r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		VenueID:              resp.VenueID,
		UserID:               resp.UserID,
		Date:                 resp.Date.Format(domain.DateFormat),
		StartTime:            resp.StartTime.String(),
		EndTime:              resp.EndTime.String(),
		SetupTime:            domain.MinutesToHours(resp.SetupMinutes),
		BreakdownTime:        domain.MinutesToHours(resp.BreakdownMinutes),
		IsOverride:           resp.IsOverride,
		Status:               resp.Status,
		OverriddenBookingIDs: resp.OverriddenBookingIDs,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
