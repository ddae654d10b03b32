package picker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Get(ctx context.Context, key domain.ScheduleKey) (*domain.StoredSchedule, error)
}

// MetricsRecorder интерфейс метрик (может быть nil)
type MetricsRecorder interface {
	SnapResolved(outcome string)
	SlotChanged(source string)
	SessionOpened()
	SessionClosed()
	IntervalsDropped(operation string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
