package timeline

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// ParseSchedule converts raw "HH:MM" schedule data into minutes.
// Bad breaks and bookings are dropped and reported one error each, so a single
// bad record does not break the whole day. Unusable working hours yield an empty
// schedule, which computes to no availability.
func ParseSchedule(data domain.ScheduleData) (domain.Schedule, []error) {
	workHours, err := parseRange(data.WorkHours)
	if err != nil {
		return domain.Schedule{}, []error{fmt.Errorf("workHours: %w", err)}
	}

	var issues []error
	schedule := domain.Schedule{WorkHours: workHours}
	schedule.Breaks, issues = parseRanges("breaks", data.Breaks, issues)
	schedule.Bookings, issues = parseRanges("bookings", data.Bookings, issues)

	return schedule, issues
}

// NormalizeSchedule drops malformed intervals of an already parsed schedule
func NormalizeSchedule(schedule domain.Schedule) (domain.Schedule, []error) {
	if !schedule.WorkHours.IsValid() {
		return domain.Schedule{}, []error{fmt.Errorf("workHours: %w: %s", ErrMalformedInterval, schedule.WorkHours)}
	}

	var issues []error
	normalized := domain.Schedule{WorkHours: schedule.WorkHours}
	normalized.Breaks, issues = keepValid("breaks", schedule.Breaks, issues)
	normalized.Bookings, issues = keepValid("bookings", schedule.Bookings, issues)

	return normalized, issues
}

func parseRanges(field string, raw []domain.RawRange, issues []error) ([]domain.TimeRange, []error) {
	ranges := make([]domain.TimeRange, 0, len(raw))
	for i, r := range raw {
		parsed, err := parseRange(r)
		if err != nil {
			issues = append(issues, fmt.Errorf("%s[%d]: %w", field, i, err))
			continue
		}
		ranges = append(ranges, parsed)
	}
	return ranges, issues
}

func keepValid(field string, ranges []domain.TimeRange, issues []error) ([]domain.TimeRange, []error) {
	kept := make([]domain.TimeRange, 0, len(ranges))
	for i, r := range ranges {
		if !r.IsValid() {
			issues = append(issues, fmt.Errorf("%s[%d]: %w: %s", field, i, ErrMalformedInterval, r))
			continue
		}
		kept = append(kept, r)
	}
	return kept, issues
}

func parseRange(raw domain.RawRange) (domain.TimeRange, error) {
	from, err := types.ParseTimeOfDay(raw.From)
	if err != nil {
		return domain.TimeRange{}, err
	}
	to, err := types.ParseTimeOfDay(raw.To)
	if err != nil {
		return domain.TimeRange{}, err
	}
	if from >= to {
		return domain.TimeRange{}, fmt.Errorf("%w: %s-%s", ErrMalformedInterval, raw.From, raw.To)
	}
	return domain.TimeRange{From: from, To: to}, nil
}
