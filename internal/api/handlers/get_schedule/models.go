package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule/models"
)

// ToServiceRequest формирует запрос к сервису из параметров пути
func ToServiceRequest(providerID int64, dateStr string) (*models.GetScheduleRequest, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &models.GetScheduleRequest{
		ProviderID: providerID,
		Date:       date,
	}, nil
}
