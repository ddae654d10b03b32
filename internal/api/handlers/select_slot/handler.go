package select_slot

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgNotFound           = "сессия не найдена или истекла"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgGestureInProgress  = "нельзя выбрать слот во время перетаскивания"
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

// Handle POST /api/v1/sessions/{sessionId}/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/select - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/select - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Select(serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, picker.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/select - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, picker.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions/{id}/select - Slot not available: session_id=%s, start=%s",
				sessionID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, picker.ErrGestureInProgress):
			h.logger.Warn("POST /sessions/{id}/select - Gesture in progress: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgGestureInProgress)

		default:
			h.logger.Error("POST /sessions/{id}/select - Failed to select slot: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/select - Slot selected: session_id=%s, start=%s", sessionID, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
