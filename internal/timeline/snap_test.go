package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
)

func TestSnap(t *testing.T) {
	schedule := referenceSchedule()
	gaps := FreeGapsOf(schedule)
	cfg := domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 2}
	workFrom := schedule.WorkHours.From

	tests := []struct {
		name   string
		at     string
		offset float64
		want   string
	}{
		{name: "exact slot start", at: "11:00", want: "11:00"},
		{name: "inside break snaps to nearest fitting slot", at: "12:45", want: "12:00"},
		{name: "equidistant prefers earlier start", at: "13:00", want: "12:00"},
		{name: "inside booking", at: "10:10", want: "10:30"},
		{name: "just past midpoint", at: "13:01", want: "14:00"},
		{name: "end of day", at: "17:50", want: "17:00"},
		{name: "before working hours", offset: -300, want: "09:00"},
		{name: "far beyond the ruler", offset: 100000, want: "17:00"},
		{name: "between grid points rounds to nearest", at: "14:44", want: "14:30"},
		{name: "between grid points rounds up", at: "14:46", want: "15:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := tt.offset
			if tt.at != "" {
				offset = OffsetOf(workFrom, tod(tt.at), cfg.PixelsPerMinute)
			}

			got, ok := Snap(workFrom, gaps, cfg, offset)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.StartTime.String())
			assert.Equal(t, 60, got.DurationMinutes())
		})
	}
}

func TestSnap_Deterministic(t *testing.T) {
	schedule := referenceSchedule()
	gaps := FreeGapsOf(schedule)
	cfg := domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 1.5}

	for offset := -50.0; offset < 900; offset += 7.25 {
		first, ok1 := Snap(schedule.WorkHours.From, gaps, cfg, offset)
		second, ok2 := Snap(schedule.WorkHours.From, gaps, cfg, offset)
		require.Equal(t, ok1, ok2)
		require.Equal(t, first, second)
	}
}

func TestSnap_NeverLandsInUnavailableTime(t *testing.T) {
	schedule := referenceSchedule()
	gaps := FreeGapsOf(schedule)
	cfg := domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 2}
	slots := GenerateSlots(gaps, cfg.TotalDuration, cfg.GridMinutes)

	for offset := 0.0; offset <= 1080; offset++ {
		got, ok := Snap(schedule.WorkHours.From, gaps, cfg, offset)
		require.True(t, ok)
		assert.Contains(t, slots, got)
	}
}

func TestSnap_NoFit(t *testing.T) {
	schedule := referenceSchedule()
	gaps := FreeGapsOf(schedule)
	cfg := domain.PickerConfig{TotalDuration: 300, GridMinutes: 30, PixelsPerMinute: 2}

	_, ok := Snap(schedule.WorkHours.From, gaps, cfg, 120)
	assert.False(t, ok)

	_, ok = Snap(schedule.WorkHours.From, nil, cfg, 120)
	assert.False(t, ok)
}

func TestOffsetConversions(t *testing.T) {
	workFrom := tod("09:00")

	assert.Equal(t, 0.0, OffsetOf(workFrom, tod("09:00"), 2))
	assert.Equal(t, 270.0, OffsetOf(workFrom, tod("11:15"), 2))
	assert.Equal(t, float64(tod("11:15")), MinuteAt(workFrom, 270, 2))
}
