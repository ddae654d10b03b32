package snap_position

import (
	"fmt"
	"math"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	if math.IsNaN(req.Offset) || math.IsInf(req.Offset, 0) {
		return fmt.Errorf("%w: offset must be a finite number", ErrInvalidInput)
	}

	return nil
}
