package compute_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers/get_available_slots"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSchedule    = "расписание обязательно"
	msgInvalidData        = "некорректные параметры расчета слотов"
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

// Handle POST /api/v1/availability
// Считает доступность по расписанию из тела запроса, без обращения к хранилищу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ComputeAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Schedule == nil {
		h.logger.Warn("POST /availability - Missing schedule")
		handlers.RespondBadRequest(w, msgMissingSchedule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability computed: slots_count=%d, dropped=%d",
		len(result.Slots), len(result.DroppedIntervals))
	handlers.RespondJSON(w, http.StatusOK, getAvailableSlotsHandler.FromUseCaseResponse(result))
}
