package convert_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts"
)

const (
	msgInvalidDraftID   = "некорректный ID черновика"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "черновик не найден"
	msgForbidden        = "доступ запрещен"
	msgNotDraft         = "запись не является черновиком"
	msgAlreadyConverted = "черновик уже преобразован в бронирование"
	msgConflict         = "время черновика пересекается с другими бронированиями"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/convert
// Успех с неудаленным черновиком - 201 и предупреждение в warnings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.ParseInt(mux.Vars(r)["draftId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /drafts/{id}/convert - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/convert - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Convert(r.Context(), draftID, userID)
	if err != nil {
		var conflictErr *drafts.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /drafts/{id}/convert - Conflict: draft_id=%d, bookings=%v", draftID, conflictErr.BookingIDs)
			handlers.RespondConflict(w, msgConflict, conflictErr.BookingIDs)

		case errors.Is(err, drafts.ErrAlreadyConverted):
			h.logger.Warn("POST /drafts/{id}/convert - Already converted: draft_id=%d", draftID)
			handlers.RespondConflict(w, msgAlreadyConverted, nil)

		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/convert - Draft not found: draft_id=%d", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/convert - Access denied: draft_id=%d, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrNotDraft):
			h.logger.Warn("POST /drafts/{id}/convert - Not a draft: draft_id=%d", draftID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotDraft)

		default:
			h.logger.Error("POST /drafts/{id}/convert - Failed to convert: draft_id=%d, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/convert - Draft converted: draft_id=%d, booking_id=%d, warnings=%d",
		draftID, result.Booking.ID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
