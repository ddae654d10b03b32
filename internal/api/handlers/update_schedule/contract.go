package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule/models"
)

type ScheduleService interface {
	Replace(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
