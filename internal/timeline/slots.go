package timeline

import (
	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// CandidateStarts returns grid-aligned start times inside gap where a slot of
// duration minutes fits. The first start is gap.From rounded up to a multiple of
// grid minutes from midnight, so slot boundaries are identical across gaps.
func CandidateStarts(gap domain.TimeRange, duration, grid int) []types.TimeOfDay {
	if duration <= 0 || grid <= 0 {
		return nil
	}

	var starts []types.TimeOfDay
	for start := gap.From.AlignUp(grid); start.AddMinutes(duration) <= gap.To; start = start.AddMinutes(grid) {
		starts = append(starts, start)
	}
	return starts
}

// GenerateSlots discretizes free gaps into ordered bookable slots
func GenerateSlots(gaps []domain.TimeRange, duration, grid int) []domain.Slot {
	slots := make([]domain.Slot, 0)
	for _, gap := range gaps {
		for _, start := range CandidateStarts(gap, duration, grid) {
			slots = append(slots, domain.Slot{StartTime: start, EndTime: start.AddMinutes(duration)})
		}
	}
	return slots
}

// GroupByPeriod buckets slots into morning/afternoon/evening for display.
// Empty periods are omitted; availability is not affected.
func GroupByPeriod(slots []domain.Slot) []domain.PeriodGroup {
	byPeriod := make(map[domain.Period][]domain.Slot, len(domain.Periods))
	for _, s := range slots {
		p := domain.PeriodOf(s.StartTime)
		byPeriod[p] = append(byPeriod[p], s)
	}

	groups := make([]domain.PeriodGroup, 0, len(domain.Periods))
	for _, p := range domain.Periods {
		if len(byPeriod[p]) == 0 {
			continue
		}
		groups = append(groups, domain.PeriodGroup{Period: p, Slots: byPeriod[p]})
	}
	return groups
}

// EarliestSlot picks the default selection: the first slot of the first gap that admits one
func EarliestSlot(gaps []domain.TimeRange, duration, grid int) (domain.Slot, bool) {
	for _, gap := range gaps {
		starts := CandidateStarts(gap, duration, grid)
		if len(starts) == 0 {
			continue
		}
		return domain.Slot{StartTime: starts[0], EndTime: starts[0].AddMinutes(duration)}, true
	}
	return domain.Slot{}, false
}
