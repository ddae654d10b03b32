package domain

import (
	"time"

	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// IntervalKind источник занятого интервала
type IntervalKind string

const (
	IntervalBreak   IntervalKind = "break"
	IntervalBooking IntervalKind = "booking"
)

// TimeRange is a half-open interval [From, To) within a single day
type TimeRange struct {
	From types.TimeOfDay `json:"from"`
	To   types.TimeOfDay `json:"to"`
}

// IsValid returns true if the range has positive width and lies inside the day
func (r TimeRange) IsValid() bool {
	return r.From < r.To && r.From.IsValid() && r.To >= 0 && r.To <= types.MinutesPerDay
}

// Duration returns the width of the range in minutes
func (r TimeRange) Duration() int {
	return int(r.To - r.From)
}

// Contains returns true if other lies entirely inside r
func (r TimeRange) Contains(other TimeRange) bool {
	return other.From >= r.From && other.To <= r.To
}

// Overlaps returns true if the two half-open ranges share at least one minute.
// Touching ranges (11:00-11:30 and 11:30-12:00) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.From < other.To && other.From < r.To
}

// Clip returns r limited to bounds. The result may be empty (From >= To).
func (r TimeRange) Clip(bounds TimeRange) TimeRange {
	return TimeRange{From: max(r.From, bounds.From), To: min(r.To, bounds.To)}
}

func (r TimeRange) String() string {
	return r.From.String() + "-" + r.To.String()
}

// BusyInterval is a break or an existing booking
type BusyInterval struct {
	TimeRange
	Kind IntervalKind `json:"kind"`
}

// Schedule contains the validated schedule facts of a provider for one day
type Schedule struct {
	WorkHours TimeRange
	Breaks    []TimeRange
	Bookings  []TimeRange
}

// Busy returns breaks and bookings as one list; they are identical for availability
func (s Schedule) Busy() []TimeRange {
	busy := make([]TimeRange, 0, len(s.Breaks)+len(s.Bookings))
	busy = append(busy, s.Breaks...)
	busy = append(busy, s.Bookings...)
	return busy
}

// ScheduleKey identifies a stored provider schedule
type ScheduleKey struct {
	ProviderID int64
	Date       time.Time
}

// StoredSchedule is a schedule persisted for a provider and a date
type StoredSchedule struct {
	Key       ScheduleKey
	Schedule  Schedule
	UpdatedAt time.Time
}

// RawRange interval as received from the hosting screen ("HH:MM" strings)
type RawRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ScheduleData raw input of the availability engine
type ScheduleData struct {
	WorkHours RawRange   `json:"workHours"`
	Breaks    []RawRange `json:"breaks"`
	Bookings  []RawRange `json:"bookings"`
}
