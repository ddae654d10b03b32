package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPickerConfig возвращается при некорректных параметрах расчета слотов
var ErrInvalidPickerConfig = errors.New("domain: invalid picker config")

// PickerConfig explicit configuration of every availability and snap computation
type PickerConfig struct {
	TotalDuration   int     // Длительность услуги в минутах
	GridMinutes     int     // Шаг сетки от полуночи
	PixelsPerMinute float64 // Масштаб линейки времени
}

// WithDefaults fills zero values with the package defaults
func (c PickerConfig) WithDefaults() PickerConfig {
	if c.GridMinutes == 0 {
		c.GridMinutes = DefaultGridMinutes
	}
	if c.PixelsPerMinute == 0 {
		c.PixelsPerMinute = DefaultPixelsPerMinute
	}
	return c
}

// Validate checks that every field is positive and within business limits
func (c PickerConfig) Validate() error {
	if c.TotalDuration <= 0 {
		return fmt.Errorf("%w: totalDuration must be positive", ErrInvalidPickerConfig)
	}
	if c.TotalDuration > MaxTotalDurationMinutes {
		return fmt.Errorf("%w: totalDuration must not exceed %d minutes", ErrInvalidPickerConfig, MaxTotalDurationMinutes)
	}
	if c.GridMinutes <= 0 {
		return fmt.Errorf("%w: gridMinutes must be positive", ErrInvalidPickerConfig)
	}
	if c.GridMinutes > MaxGridMinutes {
		return fmt.Errorf("%w: gridMinutes must not exceed %d minutes", ErrInvalidPickerConfig, MaxGridMinutes)
	}
	if c.PixelsPerMinute <= 0 {
		return fmt.Errorf("%w: pixelsPerMinute must be positive", ErrInvalidPickerConfig)
	}
	return nil
}
