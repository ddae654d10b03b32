package select_slot

import (
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

type PickerService interface {
	Select(req *models.SelectSlotRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
