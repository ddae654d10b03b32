package select_slot

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	StartTime string `json:"startTime"` // "14:30"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SelectSlotRequest) ToServiceRequest(sessionID uuid.UUID) (*models.SelectSlotRequest, error) {
	start, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &models.SelectSlotRequest{
		SessionID: sessionID,
		StartTime: start,
	}, nil
}
