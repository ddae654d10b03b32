package get_available_slots

import "fmt"

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

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidInput)
	}

	if req.GridMinutes < 0 {
		return fmt.Errorf("%w: grid must not be negative", ErrInvalidInput)
	}

	return nil
}
