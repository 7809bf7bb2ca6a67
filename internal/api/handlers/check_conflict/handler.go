package check_conflict

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	checkConflict "github.com/m04kA/SMC-VenueBookingService/internal/usecase/check_conflict"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidParams      = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInterval    = "некорректный интервал бронирования"
	msgVenueNotFound      = "площадка не найдена"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/conflicts/check
// Конфликт - нормальный результат (200 c hasConflict=true), а не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/conflicts/check - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(venueID)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/conflicts/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/conflicts/check - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkConflict.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/conflicts/check - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("POST /venues/{id}/conflicts/check - Failed to check conflict: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
