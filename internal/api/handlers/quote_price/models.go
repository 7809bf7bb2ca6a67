package quote_price

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	quotePrice "github.com/m04kA/SMC-VenueBookingService/internal/usecase/quote_price"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	VenueID       int64           `json:"venueId"`
	Date          string          `json:"date"`
	DurationHours float64         `json:"durationHours"`
	Price         PriceResponse   `json:"price"`
	Deposit       DepositResponse `json:"deposit"`
}

// PriceResponse стоимость аренды; priced=false - тариф на этот день не задан
type PriceResponse struct {
	Priced       bool    `json:"priced"`
	Mode         string  `json:"mode,omitempty"`
	BaseRate     float64 `json:"baseRate"`
	Total        float64 `json:"total"`
	MinimumHours float64 `json:"minimumHours,omitempty"`
	MeetsMinimum bool    `json:"meetsMinimum"`
}

// DepositResponse процент депозита; estimated=true - применен процент по умолчанию
type DepositResponse struct {
	Percentage      float64 `json:"percentage"`
	Amount          float64 `json:"amount"`
	DaysBeforeEvent int     `json:"daysBeforeEvent"`
	RuleApplied     bool    `json:"ruleApplied"`
	Estimated       bool    `json:"estimated"`
	Source          string  `json:"source"`
	Threshold       *int    `json:"threshold,omitempty"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(venueID int64, dateStr, durationStr, modeStr string) (*quotePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, fmt.Errorf("date: %v", err)
	}

	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return nil, fmt.Errorf("durationHours: %v", err)
	}

	return &quotePrice.Request{
		VenueID:       venueID,
		Date:          date,
		DurationHours: duration,
		Mode:          domain.PricingMode(modeStr),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	return &QuoteResponse{
		VenueID:       resp.VenueID,
		Date:          resp.Date.Format(domain.DateFormat),
		DurationHours: resp.DurationHours,
		Price: PriceResponse{
			Priced:       resp.Price.Priced,
			Mode:         string(resp.Price.Mode),
			BaseRate:     resp.Price.BaseRate,
			Total:        resp.Price.Total,
			MinimumHours: resp.Price.MinimumHours,
			MeetsMinimum: resp.Price.MeetsMinimum,
		},
		Deposit: DepositResponse{
			Percentage:      resp.Deposit.Percentage,
			Amount:          resp.DepositAmount,
			DaysBeforeEvent: resp.Deposit.DaysBefore,
			RuleApplied:     resp.Deposit.RuleApplied,
			Estimated:       resp.Deposit.Estimated,
			Source:          string(resp.Deposit.Source),
			Threshold:       resp.Deposit.Threshold,
		},
	}
}
