package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные параметры сессии"
	msgScheduleNotFound   = "расписание не найдено"
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

// Handle POST /api/v1/sessions
// Открывает сессию выбора слота; самый ранний слот выбирается сразу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /sessions - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, picker.ErrScheduleNotFound):
			h.logger.Warn("POST /sessions - Schedule not found: provider_id=%d, date=%s", req.ProviderID, req.Date)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, picker.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, no_availability=%t",
		result.ID, result.NoAvailability)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
