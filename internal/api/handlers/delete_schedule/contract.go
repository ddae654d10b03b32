package delete_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule/models"
)

type ScheduleService interface {
	Delete(ctx context.Context, req *models.DeleteScheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
