package create_session

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

// CreateSessionRequest HTTP request model.
// Без schedule сессия строится по сохраненному расписанию providerId на date.
type CreateSessionRequest struct {
	ProviderID      int64                `json:"providerId,omitempty"`
	Date            string               `json:"date,omitempty"` // "2026-03-14"
	Schedule        *domain.ScheduleData `json:"schedule,omitempty"`
	DurationMinutes int                  `json:"durationMinutes,omitempty"`
	GridMinutes     int                  `json:"gridMinutes,omitempty"`
	PixelsPerMinute float64              `json:"pixelsPerMinute,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSessionRequest) ToServiceRequest() (*models.CreateSessionRequest, error) {
	req := &models.CreateSessionRequest{
		ProviderID:      r.ProviderID,
		Schedule:        r.Schedule,
		DurationMinutes: r.DurationMinutes,
		GridMinutes:     r.GridMinutes,
		PixelsPerMinute: r.PixelsPerMinute,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = date
	}

	return req, nil
}
