package domain

import "github.com/m04kA/SMC-ScheduleTimeline/pkg/types"

// Slot represents a grid-aligned, fixed-duration bookable interval inside one free gap
type Slot struct {
	StartTime types.TimeOfDay `json:"startTime"`
	EndTime   types.TimeOfDay `json:"endTime"`
}

// DurationMinutes returns the slot length
func (s Slot) DurationMinutes() int {
	return int(s.EndTime - s.StartTime)
}

// Range returns the slot as a TimeRange
func (s Slot) Range() TimeRange {
	return TimeRange{From: s.StartTime, To: s.EndTime}
}

// Period display bucket of a slot
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// Periods порядок отображения групп
var Periods = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

// PeriodOf returns the display bucket for a slot start time
func PeriodOf(start types.TimeOfDay) Period {
	switch hour := start.Hour(); {
	case hour < AfternoonStartHour:
		return PeriodMorning
	case hour < EveningStartHour:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// PeriodGroup slots of one display bucket, ordered by start time
type PeriodGroup struct {
	Period Period `json:"period"`
	Slots  []Slot `json:"slots"`
}

// SlotChangeSource describes what caused the committed selection to change
type SlotChangeSource string

const (
	SourceAuto SlotChangeSource = "auto"
	SourceTap  SlotChangeSource = "tap"
	SourceDrag SlotChangeSource = "drag"
)
