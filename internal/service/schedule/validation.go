package schedule

import (
	"fmt"
	"time"
)

// validateKey проверяет идентификатор исполнителя и дату
func validateKey(providerID int64, date time.Time) error {
	if providerID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
