package update_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model: расписание заменяется целиком
type UpdateScheduleRequest struct {
	WorkHours domain.RawRange   `json:"workHours"`
	Breaks    []domain.RawRange `json:"breaks"`
	Bookings  []domain.RawRange `json:"bookings"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID, providerID int64, dateStr string) (*models.ReplaceScheduleRequest, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &models.ReplaceScheduleRequest{
		UserID:     userID,
		ProviderID: providerID,
		Date:       date,
		Data: domain.ScheduleData{
			WorkHours: r.WorkHours,
			Breaks:    r.Breaks,
			Bookings:  r.Bookings,
		},
	}, nil
}
