package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	getAvailability "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_availability"
)

const (
	msgInvalidVenueID  = "некорректный ID площадки"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound   = "площадка не найдена"
	msgInvalidVenueCfg = "у площадки некорректные часы работы"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/availability
// Query params: date (required, YYYY-MM-DD)
// Заголовок X-Client-ID включает вытеснение: ответ на устаревший запрос - 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(middleware.GetClientID(r.Context()), venueID, dateStr)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrStaleFetchDiscarded):
			h.logger.Info("GET /venues/{id}/availability - Superseded fetch discarded: venue_id=%d, client_id=%s",
				venueID, useCaseReq.ClientID)
			handlers.RespondStale(w)

		case errors.Is(err, getAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/availability - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, getAvailability.ErrInvalidVenueHours):
			h.logger.Error("GET /venues/{id}/availability - Invalid venue hours: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidVenueCfg)

		default:
			h.logger.Error("GET /venues/{id}/availability - Failed to build availability: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/availability - Availability built: venue_id=%d, date=%s, slots=%d, available=%d",
		venueID, dateStr, len(result.Slots), result.Stats.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
