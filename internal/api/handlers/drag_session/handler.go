package drag_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

const (
	msgInvalidSessionID   = "некорректный ID сессии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingTranslation = "смещение translation обязательно"
	msgInvalidData        = "некорректное смещение"
	msgNotFound           = "сессия не найдена или истекла"
	msgNoActiveGesture    = "нет активного перетаскивания"
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

// HandleStart POST /api/v1/sessions/{sessionId}/drag/start
// Незавершенный предыдущий жест отбрасывается
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "start")
	if !ok {
		return
	}

	result, err := h.service.BeginDrag(sessionID)
	if err != nil {
		h.respondError(w, sessionID, "start", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMove POST /api/v1/sessions/{sessionId}/drag/move
// Body: {"translation": 120.5}
func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "move")
	if !ok {
		return
	}

	var req MoveDragRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/drag/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Translation == nil {
		h.logger.Warn("POST /sessions/{id}/drag/move - Missing translation: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingTranslation)
		return
	}

	result, err := h.service.MoveDrag(&models.MoveDragRequest{
		SessionID:   sessionID,
		Translation: *req.Translation,
	})
	if err != nil {
		h.respondError(w, sessionID, "move", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleEnd POST /api/v1/sessions/{sessionId}/drag/end
// Возвращает выбранный слот и позиции для анимации блока
func (h *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "end")
	if !ok {
		return
	}

	result, err := h.service.EndDrag(sessionID)
	if err != nil {
		h.respondError(w, sessionID, "end", err)
		return
	}

	h.logger.Info("POST /sessions/{id}/drag/end - Gesture resolved: session_id=%s, committed=%t",
		sessionID, result.Committed)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCancel POST /api/v1/sessions/{sessionId}/drag/cancel
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "cancel")
	if !ok {
		return
	}

	result, err := h.service.CancelDrag(sessionID)
	if err != nil {
		h.respondError(w, sessionID, "cancel", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request, action string) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["sessionId"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/drag/%s - Invalid session ID: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return uuid.Nil, false
	}
	return sessionID, true
}

func (h *Handler) respondError(w http.ResponseWriter, sessionID uuid.UUID, action string, err error) {
	switch {
	case errors.Is(err, picker.ErrSessionNotFound):
		h.logger.Warn("POST /sessions/{id}/drag/%s - Session not found: session_id=%s", action, sessionID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, picker.ErrNoActiveGesture):
		h.logger.Warn("POST /sessions/{id}/drag/%s - No active gesture: session_id=%s", action, sessionID)
		handlers.RespondConflict(w, msgNoActiveGesture)

	case errors.Is(err, picker.ErrInvalidInput):
		h.logger.Warn("POST /sessions/{id}/drag/%s - Invalid data: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("POST /sessions/{id}/drag/%s - Failed: session_id=%s, error=%v", action, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
