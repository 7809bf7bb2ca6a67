package quote_price

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/pricing"
)

// Request модель запроса расчета стоимости
type Request struct {
	VenueID       int64
	Date          time.Time
	DurationHours float64
	Mode          domain.PricingMode // hourly, full_day; пусто - по тарифу дня
}

// Response расчет стоимости и депозита
type Response struct {
	VenueID       int64
	Date          time.Time
	DurationHours float64
	Price         pricing.PriceQuote
	Deposit       pricing.DepositInfo
	DepositAmount float64
}
