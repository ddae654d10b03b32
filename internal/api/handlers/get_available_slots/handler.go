package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/get_available_slots"
)

const (
	msgInvalidProviderID = "некорректный ID исполнителя"
	msgInvalidParams     = "некорректные параметры запроса: дата YYYY-MM-DD, duration и grid - целые минуты"
	msgInvalidData       = "некорректные параметры расчета слотов"
	msgScheduleNotFound  = "расписание не найдено"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/schedules/{date}/available-slots
// Query params: duration, grid (опционально, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем providerId из URL
	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedules/{date}/available-slots - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	// Формируем запрос к use case (с парсингом даты и параметров)
	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(providerID, vars["date"], query.Get("duration"), query.Get("grid"))
	if err != nil {
		h.logger.Warn("GET /providers/{id}/schedules/{date}/available-slots - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrScheduleNotFound):
			h.logger.Warn("GET /providers/{id}/schedules/{date}/available-slots - Schedule not found: provider_id=%d, date=%s",
				providerID, vars["date"])
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/schedules/{date}/available-slots - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /providers/{id}/schedules/{date}/available-slots - Failed to get slots: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/schedules/{date}/available-slots - Slots retrieved successfully: provider_id=%d, slots_count=%d",
		providerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
