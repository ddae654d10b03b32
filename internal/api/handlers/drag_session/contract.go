package drag_session

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

type PickerService interface {
	BeginDrag(id uuid.UUID) (*models.SessionResponse, error)
	MoveDrag(req *models.MoveDragRequest) (*models.SessionResponse, error)
	EndDrag(id uuid.UUID) (*models.ResolutionResponse, error)
	CancelDrag(id uuid.UUID) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
