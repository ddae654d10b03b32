package compute_availability

import (
	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ScheduleTimeline/internal/usecase/get_available_slots"
)

// ComputeAvailabilityRequest HTTP request model: расписание передается целиком
type ComputeAvailabilityRequest struct {
	Schedule        *domain.ScheduleData `json:"schedule"`
	DurationMinutes int                  `json:"durationMinutes,omitempty"`
	GridMinutes     int                  `json:"gridMinutes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ComputeAvailabilityRequest) ToUseCaseRequest() *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Schedule:        r.Schedule,
		DurationMinutes: r.DurationMinutes,
		GridMinutes:     r.GridMinutes,
	}
}
