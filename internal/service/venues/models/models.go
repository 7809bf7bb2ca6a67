package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// PricingRuleResponse тариф площадки на день недели
type PricingRuleResponse struct {
	DayOfWeek    string   `json:"dayOfWeek"` // "monday"
	Mode         string   `json:"mode"`
	HourlyRate   *float64 `json:"hourlyRate,omitempty"`
	FullDayRate  *float64 `json:"fullDayRate,omitempty"`
	MinimumHours *float64 `json:"minimumHours,omitempty"`
}

// VenueResponse данные площадки с таблицей тарифов
type VenueResponse struct {
	ID              int64                 `json:"id"`
	Name            string                `json:"name"`
	OpenHour        int                   `json:"openHour"`
	CloseHour       int                   `json:"closeHour"`
	SlotStepMinutes int                   `json:"slotStepMinutes"`
	Timezone        string                `json:"timezone,omitempty"`
	Pricing         []PricingRuleResponse `json:"pricing"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// FromDomain конвертирует площадку и тарифы в DTO
func FromDomain(v *domain.Venue, rules []domain.PricingRule) *VenueResponse {
	resp := &VenueResponse{
		ID:              v.ID,
		Name:            v.Name,
		OpenHour:        v.OpenHour,
		CloseHour:       v.CloseHour,
		SlotStepMinutes: v.StepMinutes(),
		Timezone:        v.Timezone,
		Pricing:         make([]PricingRuleResponse, 0, len(rules)),
		UpdatedAt:       v.UpdatedAt,
	}

	for _, r := range rules {
		resp.Pricing = append(resp.Pricing, PricingRuleResponse{
			DayOfWeek:    weekdayName(r.DayOfWeek),
			Mode:         string(r.Mode),
			HourlyRate:   r.HourlyRate,
			FullDayRate:  r.FullDayRate,
			MinimumHours: r.MinimumHours,
		})
	}

	return resp
}

func weekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}
