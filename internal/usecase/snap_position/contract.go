package snap_position

import (
	"context"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, key domain.ScheduleKey) (*domain.StoredSchedule, error)
}

// MetricsRecorder интерфейс метрик (может быть nil)
type MetricsRecorder interface {
	IntervalsDropped(operation string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
