package snap_position

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/api/handlers"
	snapPosition "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/snap_position"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidData        = "некорректные параметры привязки"
	msgScheduleNotFound   = "расписание не найдено"
)

type Handler struct {
	useCase SnapPositionUseCase
	logger  Logger
}

func NewHandler(useCase SnapPositionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/snap
// Привязывает позицию блока к ближайшему допустимому слоту; found=false, если услуга никуда не помещается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SnapRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /snap - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /snap - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, snapPosition.ErrScheduleNotFound):
			h.logger.Warn("POST /snap - Schedule not found: provider_id=%d, date=%s", req.ProviderID, req.Date)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, snapPosition.ErrInvalidInput):
			h.logger.Warn("POST /snap - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /snap - Failed to snap position: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /snap - Offset %.1f resolved: found=%t", req.Offset, result.Found)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
