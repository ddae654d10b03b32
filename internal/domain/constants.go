package domain

// Default configuration values
const (
	DefaultGridMinutes          = 30
	DefaultPixelsPerMinute      = 2.0
	DefaultTotalDurationMinutes = 60
)

// Business validation constants
const (
	MaxTotalDurationMinutes = 24 * 60
	MaxGridMinutes          = 24 * 60
	MaxIntervalsPerSchedule = 500
)

// Границы групп слотов для отображения
const (
	AfternoonStartHour = 12
	EveningStartHour   = 17
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
