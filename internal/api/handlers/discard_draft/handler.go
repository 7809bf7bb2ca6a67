package discard_draft

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
	msgInvalidDraftID = "некорректный ID черновика"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
	msgNotDraft       = "запись не является черновиком"
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

// Handle DELETE /api/v1/drafts/{draftId}
// Повторное удаление - тоже 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID, err := strconv.ParseInt(mux.Vars(r)["draftId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /drafts/{id} - Invalid draft ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Discard(r.Context(), draftID, userID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: draft_id=%d, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, drafts.ErrNotDraft):
			h.logger.Warn("DELETE /drafts/{id} - Not a draft: draft_id=%d", draftID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNotDraft)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to discard: draft_id=%d, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%d, user_id=%d", draftID, userID)
	w.WriteHeader(http.StatusNoContent)
}
