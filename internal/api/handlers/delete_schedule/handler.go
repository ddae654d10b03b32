package delete_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule/models"
)

const (
	msgInvalidProviderID = "некорректный ID исполнителя"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/providers/{providerId}/schedules/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/schedules/{date} - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /providers/{id}/schedules/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /providers/{id}/schedules/{date} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteScheduleRequest{
		UserID:     userID,
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("DELETE /providers/{id}/schedules/{date} - Access denied: provider_id=%d, user_id=%d",
				providerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("DELETE /providers/{id}/schedules/{date} - Schedule not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /providers/{id}/schedules/{date} - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("DELETE /providers/{id}/schedules/{date} - Failed to delete schedule: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /providers/{id}/schedules/{date} - Schedule deleted: provider_id=%d, date=%s",
		providerID, vars["date"])
	w.WriteHeader(http.StatusNoContent)
}
