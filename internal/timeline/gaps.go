package timeline

import (
	"cmp"
	"slices"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

// MergeBusy clips busy intervals to working hours, drops empty or inverted ones,
// and merges overlapping or touching intervals into maximal busy blocks sorted by From.
func MergeBusy(workHours domain.TimeRange, busy []domain.TimeRange) []domain.TimeRange {
	clipped := make([]domain.TimeRange, 0, len(busy))
	for _, b := range busy {
		if b.From >= b.To {
			continue
		}
		c := b.Clip(workHours)
		if c.From >= c.To {
			continue
		}
		clipped = append(clipped, c)
	}

	slices.SortFunc(clipped, func(a, b domain.TimeRange) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.To, b.To)
	})

	merged := make([]domain.TimeRange, 0, len(clipped))
	for _, b := range clipped {
		last := len(merged) - 1
		if last >= 0 && b.From <= merged[last].To {
			merged[last].To = max(merged[last].To, b.To)
			continue
		}
		merged = append(merged, b)
	}

	return merged
}

// ComputeFreeGaps returns the ordered, non-overlapping maximal free windows inside
// working hours that do not intersect any break or booking.
// An empty result is a valid fully booked day.
func ComputeFreeGaps(workHours domain.TimeRange, busy []domain.TimeRange) []domain.TimeRange {
	gaps := make([]domain.TimeRange, 0)
	if workHours.From >= workHours.To {
		return gaps
	}

	cursor := workHours.From
	for _, block := range MergeBusy(workHours, busy) {
		if block.From > cursor {
			gaps = append(gaps, domain.TimeRange{From: cursor, To: block.From})
		}
		cursor = max(cursor, block.To)
	}

	if cursor < workHours.To {
		gaps = append(gaps, domain.TimeRange{From: cursor, To: workHours.To})
	}

	return gaps
}

// FreeGapsOf computes free gaps for a schedule
func FreeGapsOf(schedule domain.Schedule) []domain.TimeRange {
	return ComputeFreeGaps(schedule.WorkHours, schedule.Busy())
}
