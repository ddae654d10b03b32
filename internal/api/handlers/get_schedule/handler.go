package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule"
)

const (
	msgInvalidProviderID = "некорректный ID исполнителя"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound          = "расписание не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedules/{date}
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedules/{date} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	serviceReq, err := ToServiceRequest(providerID, vars["date"])
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedules/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Get(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("GET /providers/{id}/schedules/{date} - Schedule not found: provider_id=%d, date=%s",
				providerID, vars["date"])
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/schedules/{date} - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("GET /providers/{id}/schedules/{date} - Failed to get schedule: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedules/{date} - Schedule retrieved successfully: provider_id=%d, date=%s",
		providerID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
