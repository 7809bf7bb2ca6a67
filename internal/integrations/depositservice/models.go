package depositservice

import "github.com/m04kA/SMC-VenueBookingService/internal/domain"

// DepositRule правило депозита в формате DepositService
type DepositRule struct {
	DaysBeforeEvent int     `json:"days_before_event"`
	Percentage      float64 `json:"percentage"`
}

// RulesResponse ответ DepositService со списком правил площадки
type RulesResponse struct {
	VenueID int64         `json:"venue_id"`
	Rules   []DepositRule `json:"rules"`
}

// ErrorResponse модель ошибки от DepositService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toDomain(rules []DepositRule) []domain.DepositRule {
	result := make([]domain.DepositRule, 0, len(rules))
	for _, r := range rules {
		result = append(result, domain.DepositRule{
			DaysBeforeThreshold: r.DaysBeforeEvent,
			Percentage:          r.Percentage,
		})
	}
	return result
}

func fromDomain(rules []domain.DepositRule) []DepositRule {
	result := make([]DepositRule, 0, len(rules))
	for _, r := range rules {
		result = append(result, DepositRule{
			DaysBeforeEvent: r.DaysBeforeThreshold,
			Percentage:      r.Percentage,
		})
	}
	return result
}
