package quote_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	quotePrice "github.com/m04kA/SMC-VenueBookingService/internal/usecase/quote_price"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgMissingParams  = "параметры date и durationHours обязательны"
	msgInvalidParams  = "некорректные параметры запроса"
	msgPastDate       = "дата события уже прошла"
	msgVenueNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/quote
// Query params: date (YYYY-MM-DD), durationHours, mode (hourly|full_day, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/quote - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	query := r.URL.Query()
	dateStr, durationStr := query.Get("date"), query.Get("durationHours")
	if dateStr == "" || durationStr == "" {
		h.logger.Warn("GET /venues/{id}/quote - Missing params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, dateStr, durationStr, query.Get("mode"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/quote - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/quote - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, quotePrice.ErrInvalidDate):
			h.logger.Warn("GET /venues/{id}/quote - Past date: venue_id=%d, date=%s", venueID, dateStr)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, quotePrice.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/quote - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("GET /venues/{id}/quote - Failed to quote: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/quote - Quote built: venue_id=%d, priced=%t, deposit_source=%s",
		venueID, result.Price.Priced, result.Deposit.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
