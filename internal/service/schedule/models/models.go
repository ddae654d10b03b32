package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

// Request модели

// GetScheduleRequest запрос на получение расписания
type GetScheduleRequest struct {
	ProviderID int64
	Date       time.Time
}

// ReplaceScheduleRequest запрос на полную замену расписания.
// Время передается строками "HH:MM", некорректные перерывы и бронирования отбрасываются.
type ReplaceScheduleRequest struct {
	UserID     int64
	ProviderID int64
	Date       time.Time
	Data       domain.ScheduleData
}

// DeleteScheduleRequest запрос на удаление расписания
type DeleteScheduleRequest struct {
	UserID     int64
	ProviderID int64
	Date       time.Time
}

// Response модели

// ScheduleResponse расписание исполнителя на дату
type ScheduleResponse struct {
	ProviderID       int64              `json:"providerId"`
	Date             string             `json:"date"`
	WorkHours        domain.TimeRange   `json:"workHours"`
	Breaks           []domain.TimeRange `json:"breaks"`
	Bookings         []domain.TimeRange `json:"bookings"`
	UpdatedAt        time.Time          `json:"updatedAt"`
	DroppedIntervals []string           `json:"droppedIntervals,omitempty"` // Отброшенные некорректные интервалы
}

// FromStoredSchedule конвертирует доменную модель в ответ
func FromStoredSchedule(stored *domain.StoredSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ProviderID: stored.Key.ProviderID,
		Date:       stored.Key.Date.Format(domain.DateFormat),
		WorkHours:  stored.Schedule.WorkHours,
		Breaks:     nonNil(stored.Schedule.Breaks),
		Bookings:   nonNil(stored.Schedule.Bookings),
		UpdatedAt:  stored.UpdatedAt,
	}
}

func nonNil(ranges []domain.TimeRange) []domain.TimeRange {
	if ranges == nil {
		return []domain.TimeRange{}
	}
	return ranges
}
