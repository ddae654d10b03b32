package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// Request модели

// CreateSessionRequest запрос на открытие сессии выбора слота.
// Если Schedule не задан, расписание берется из хранилища и сессия
// получает его последующие замены.
type CreateSessionRequest struct {
	ProviderID      int64
	Date            time.Time
	Schedule        *domain.ScheduleData
	DurationMinutes int
	GridMinutes     int
	PixelsPerMinute float64
}

// SelectSlotRequest выбор слота касанием
type SelectSlotRequest struct {
	SessionID uuid.UUID
	StartTime types.TimeOfDay
}

// MoveDragRequest накопленное смещение активного жеста в пикселях
type MoveDragRequest struct {
	SessionID   uuid.UUID
	Translation float64
}

// Response модели

// SlotChangeEvent событие смены выбранного слота
type SlotChangeEvent struct {
	Seq       int                     `json:"seq"`
	StartTime types.TimeOfDay         `json:"startTime"`
	Source    domain.SlotChangeSource `json:"source"`
	At        time.Time               `json:"at"`
}

// SessionResponse состояние сессии выбора слота
type SessionResponse struct {
	ID              uuid.UUID            `json:"id"`
	ProviderID      int64                `json:"providerId,omitempty"`
	Date            string               `json:"date,omitempty"`
	State           string               `json:"state"`
	DurationMinutes int                  `json:"durationMinutes"`
	GridMinutes     int                  `json:"gridMinutes"`
	PixelsPerMinute float64              `json:"pixelsPerMinute"`
	WorkHours       domain.TimeRange     `json:"workHours"`
	Gaps            []domain.TimeRange   `json:"gaps"`
	Periods         []domain.PeriodGroup `json:"periods"`
	NoAvailability  bool                 `json:"noAvailability"`
	Selected        *domain.Slot         `json:"selected,omitempty"`
	Preview         *domain.Slot         `json:"preview,omitempty"` // Ближайший слот под указателем во время жеста
	Offset          float64              `json:"offset"`            // Текущая позиция блока в пикселях
	Events          []SlotChangeEvent    `json:"events"`
	ExpiresAt       time.Time            `json:"expiresAt"`
}

// ResolutionResponse результат завершения жеста
type ResolutionResponse struct {
	Session    *SessionResponse `json:"session"`
	Committed  bool             `json:"committed"`
	Reverted   bool             `json:"reverted"`
	FromOffset float64          `json:"fromOffset"`
	ToOffset   float64          `json:"toOffset"`
}
