package timeline

import (
	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func rng(from, to string) domain.TimeRange {
	return domain.TimeRange{From: tod(from), To: tod(to)}
}

func slot(from, to string) domain.Slot {
	return domain.Slot{StartTime: tod(from), EndTime: tod(to)}
}

// referenceSchedule рабочий день 09:00-18:00, обед 13:00-14:00, бронь 10:00-10:30
func referenceSchedule() domain.Schedule {
	return domain.Schedule{
		WorkHours: rng("09:00", "18:00"),
		Breaks:    []domain.TimeRange{rng("13:00", "14:00")},
		Bookings:  []domain.TimeRange{rng("10:00", "10:30")},
	}
}

func startsOf(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}
