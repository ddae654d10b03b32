package timeline

import (
	"math"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// OffsetOf returns the pixel position of t on a ruler that starts at workFrom
func OffsetOf(workFrom, t types.TimeOfDay, pixelsPerMinute float64) float64 {
	return float64(t-workFrom) * pixelsPerMinute
}

// MinuteAt converts a pixel offset back to (fractional) minutes since midnight
func MinuteAt(workFrom types.TimeOfDay, offset, pixelsPerMinute float64) float64 {
	return float64(workFrom) + offset/pixelsPerMinute
}

// Snap resolves a pixel offset to the nearest legal slot. Candidates are the same
// grid-aligned starts GenerateSlots produces, so a slot never straddles a break or
// booking. Equidistant candidates resolve to the earlier start.
// Returns false when no gap can hold a slot of the configured duration.
func Snap(workFrom types.TimeOfDay, gaps []domain.TimeRange, cfg domain.PickerConfig, offset float64) (domain.Slot, bool) {
	target := MinuteAt(workFrom, offset, cfg.PixelsPerMinute)

	var (
		best     domain.Slot
		bestDist = math.Inf(1)
		found    bool
	)

	for _, gap := range gaps {
		for _, start := range CandidateStarts(gap, cfg.TotalDuration, cfg.GridMinutes) {
			dist := math.Abs(float64(start) - target)
			if !found || dist < bestDist || (dist == bestDist && start < best.StartTime) {
				best = domain.Slot{StartTime: start, EndTime: start.AddMinutes(cfg.TotalDuration)}
				bestDist = dist
				found = true
			}
		}
	}

	return best, found
}
