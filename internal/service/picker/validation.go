package picker

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
)

// validateCreateRequest валидирует запрос на открытие сессии
func validateCreateRequest(req *models.CreateSessionRequest) error {
	if req.Schedule == nil {
		if req.ProviderID <= 0 {
			return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
		}
		if req.Date.IsZero() {
			return fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
	}

	if req.DurationMinutes < 0 || req.GridMinutes < 0 || req.PixelsPerMinute < 0 {
		return fmt.Errorf("%w: duration, grid and scale must not be negative", ErrInvalidInput)
	}

	return nil
}
