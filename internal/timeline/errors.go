package timeline

import (
	"errors"

	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

var (
	// ErrInvalidTimeFormat строка времени не соответствует "HH:MM"
	ErrInvalidTimeFormat = types.ErrInvalidTimeFormat

	// ErrMalformedInterval интервал с from >= to
	ErrMalformedInterval = errors.New("timeline: malformed interval, from must be before to")

	// ErrSlotNotAvailable выбранное время не является допустимым слотом
	ErrSlotNotAvailable = errors.New("timeline: slot is not available")

	// ErrNoActiveGesture событие жеста пришло без активного перетаскивания
	ErrNoActiveGesture = errors.New("timeline: no active drag gesture")

	// ErrGestureInProgress выбор по нажатию во время активного перетаскивания
	ErrGestureInProgress = errors.New("timeline: drag gesture in progress")

	// ErrEngineClosed движок уже закрыт (виджет размонтирован)
	ErrEngineClosed = errors.New("timeline: engine closed")
)
