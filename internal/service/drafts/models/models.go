package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// WarningDraftCleanupFailed код предупреждения: бронирование создано, черновик не удален
const WarningDraftCleanupFailed = "DraftCleanupFailed"

// Request модели

// SaveDraftRequest запрос на сохранение черновика (буферы в часах, как в форме)
type SaveDraftRequest struct {
	UserID            int64   `json:"-"`
	VenueID           int64   `json:"venueId"`
	Date              string  `json:"date"`      // "2026-06-10"
	StartTime         string  `json:"startTime"` // "14:00"
	EndTime           string  `json:"endTime"`   // "18:00"
	SetupTime         float64 `json:"setupTime"`
	BreakdownTime     float64 `json:"breakdownTime"`
	OverrideConflicts bool    `json:"overrideConflicts"`
	Notes             *string `json:"notes,omitempty"`
}

// ToDomain конвертирует запрос в черновик
func (r *SaveDraftRequest) ToDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %v", r.Date, err)
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	var notes *string
	if r.Notes != nil {
		trimmed := strings.TrimSpace(*r.Notes)
		if len(trimmed) > domain.MaxNotesLength {
			return nil, fmt.Errorf("notes exceed %d characters", domain.MaxNotesLength)
		}
		if trimmed != "" {
			notes = &trimmed
		}
	}

	b := &domain.Booking{
		VenueID:          r.VenueID,
		UserID:           r.UserID,
		Date:             date,
		StartTime:        start,
		EndTime:          end,
		SetupMinutes:     domain.HoursToMinutes(r.SetupTime),
		BreakdownMinutes: domain.HoursToMinutes(r.BreakdownTime),
		IsOverride:       r.OverrideConflicts,
		Status:           domain.StatusDraft,
		Notes:            notes,
	}
	if b.SetupMinutes > domain.MaxBufferMinutes || b.BreakdownMinutes > domain.MaxBufferMinutes {
		return nil, fmt.Errorf("buffers must not exceed %d minutes", domain.MaxBufferMinutes)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Response модели

// DraftResponse данные черновика или созданного из него бронирования
type DraftResponse struct {
	ID            int64     `json:"id"`
	VenueID       int64     `json:"venueId"`
	UserID        int64     `json:"userId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	SetupTime     float64   `json:"setupTime"`
	BreakdownTime float64   `json:"breakdownTime"`
	IsOverride    bool      `json:"isOverride"`
	Status        string    `json:"status"`
	SourceDraftID *int64    `json:"sourceDraftId,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Warning предупреждение, не отменяющее успешность операции
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ConvertResponse результат конвертации черновика
type ConvertResponse struct {
	Booking  DraftResponse `json:"booking"`
	Warnings []Warning     `json:"warnings"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(b *domain.Booking) *DraftResponse {
	if b == nil {
		return nil
	}
	return &DraftResponse{
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
	}
}
