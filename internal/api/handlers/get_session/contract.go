package get_session

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

type PickerService interface {
	Get(id uuid.UUID) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
