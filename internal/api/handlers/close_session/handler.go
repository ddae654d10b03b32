package close_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker"
)

const (
	msgInvalidSessionID = "некорректный ID сессии"
	msgNotFound         = "сессия не найдена или уже закрыта"
)

type Handler struct {
	service PickerService
	logger  Logger
}

func NewHandler(service PickerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
// Закрытие прерывает активный жест; дальнейшие события сессии отклоняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id} - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	if err := h.service.Close(sessionID); err != nil {
		if errors.Is(err, picker.ErrSessionNotFound) {
			h.logger.Warn("DELETE /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /sessions/{id} - Failed to close session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session closed: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
