package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

type fakeRepo struct {
	stored *domain.StoredSchedule
	err    error
}

func (r *fakeRepo) Get(_ context.Context, key domain.ScheduleKey) (*domain.StoredSchedule, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.stored == nil || r.stored.Key != key {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return r.stored, nil
}

type fakeMetrics struct {
	dropped map[string]int
}

func (m *fakeMetrics) IntervalsDropped(operation string, count int) {
	if m.dropped == nil {
		m.dropped = map[string]int{}
	}
	m.dropped[operation] += count
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func rng(from, to string) domain.TimeRange {
	return domain.TimeRange{From: tod(from), To: tod(to)}
}

func defaults() domain.PickerConfig {
	return domain.PickerConfig{TotalDuration: 60, GridMinutes: 30, PixelsPerMinute: 2}
}

func referenceData() *domain.ScheduleData {
	return &domain.ScheduleData{
		WorkHours: domain.RawRange{From: "09:00", To: "18:00"},
		Breaks:    []domain.RawRange{{From: "13:00", To: "14:00"}},
		Bookings:  []domain.RawRange{{From: "10:00", To: "10:30"}},
	}
}

func starts(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.StartTime.String()
	}
	return out
}

func TestUseCase_InlineReferenceDay(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, defaults(), nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Schedule: referenceData()})
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeRange{
		rng("09:00", "10:00"),
		rng("10:30", "13:00"),
		rng("14:00", "18:00"),
	}, resp.Gaps)
	assert.Equal(t, []string{
		"09:00", "10:30", "11:00", "11:30", "12:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
	}, starts(resp.Slots))

	require.Len(t, resp.Periods, 3)
	assert.Equal(t, domain.PeriodMorning, resp.Periods[0].Period)
	assert.Equal(t, []string{"09:00", "10:30", "11:00", "11:30"}, starts(resp.Periods[0].Slots))
	assert.Equal(t, []string{"17:00"}, starts(resp.Periods[2].Slots))

	require.NotNil(t, resp.DefaultSlot)
	assert.Equal(t, tod("09:00"), resp.DefaultSlot.StartTime)
	assert.Equal(t, tod("10:00"), resp.DefaultSlot.EndTime)
	assert.False(t, resp.NoAvailability)
	assert.Empty(t, resp.DroppedIntervals)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, 30, resp.GridMinutes)
}

func TestUseCase_Overrides(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, defaults(), nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Schedule:        referenceData(),
		DurationMinutes: 120,
		GridMinutes:     60,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "14:00", "15:00", "16:00"}, starts(resp.Slots))
	assert.Equal(t, tod("11:00"), resp.DefaultSlot.StartTime)
}

func TestUseCase_NoAvailability(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, defaults(), nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Schedule: &domain.ScheduleData{
			WorkHours: domain.RawRange{From: "09:00", To: "10:00"},
			Bookings:  []domain.RawRange{{From: "09:00", To: "10:00"}},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.NoAvailability)
	assert.Nil(t, resp.DefaultSlot)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Periods)
}

func TestUseCase_DroppedIntervals(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(&fakeRepo{}, defaults(), metrics, nopLogger{})

	data := referenceData()
	data.Bookings = append(data.Bookings, domain.RawRange{From: "9:75", To: "10:00"})

	resp, err := uc.Execute(context.Background(), &Request{Schedule: data})
	require.NoError(t, err)
	require.Len(t, resp.DroppedIntervals, 1)
	assert.Contains(t, resp.DroppedIntervals[0], "bookings[1]")
	assert.Len(t, resp.Slots, 12)
	assert.Equal(t, 1, metrics.dropped[operationName])
}

func TestUseCase_StoredSchedule(t *testing.T) {
	repo := &fakeRepo{stored: &domain.StoredSchedule{
		Key: domain.ScheduleKey{ProviderID: 3, Date: testDate},
		Schedule: domain.Schedule{
			WorkHours: rng("09:00", "12:00"),
			Bookings:  []domain.TimeRange{rng("09:00", "11:00")},
		},
	}}
	uc := NewUseCase(repo, defaults(), nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProviderID: 3, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, []string{"11:00"}, starts(resp.Slots))
	assert.Equal(t, int64(3), resp.ProviderID)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 4, Date: testDate})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repo    *fakeRepo
		req     *Request
		wantErr error
	}{
		{
			name:    "missing provider",
			repo:    &fakeRepo{},
			req:     &Request{Date: testDate},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			repo:    &fakeRepo{},
			req:     &Request{ProviderID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative duration",
			repo:    &fakeRepo{},
			req:     &Request{Schedule: referenceData(), DurationMinutes: -5},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "duration above limit",
			repo:    &fakeRepo{},
			req:     &Request{Schedule: referenceData(), DurationMinutes: domain.MaxTotalDurationMinutes + 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "repository failure",
			repo:    &fakeRepo{err: errors.New("connection refused")},
			req:     &Request{ProviderID: 1, Date: testDate},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, defaults(), nil, nopLogger{})
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
