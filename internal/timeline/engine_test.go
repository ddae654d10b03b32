package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

type slotChange struct {
	start  string
	source domain.SlotChangeSource
}

type changeRecorder struct {
	changes []slotChange
}

func (r *changeRecorder) record(start types.TimeOfDay, source domain.SlotChangeSource) {
	r.changes = append(r.changes, slotChange{start: start.String(), source: source})
}

func newTestEngine(t *testing.T, schedule domain.Schedule, duration int) (*Engine, *changeRecorder) {
	t.Helper()

	rec := &changeRecorder{}
	e, err := NewEngine(schedule, domain.PickerConfig{TotalDuration: duration, PixelsPerMinute: 2},
		WithSlotChangeHandler(rec.record))
	require.NoError(t, err)
	return e, rec
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	_, err := NewEngine(referenceSchedule(), domain.PickerConfig{TotalDuration: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidPickerConfig)

	_, err = NewEngine(referenceSchedule(), domain.PickerConfig{TotalDuration: 30, GridMinutes: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidPickerConfig)

	_, err = NewEngine(referenceSchedule(), domain.PickerConfig{TotalDuration: 30, PixelsPerMinute: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidPickerConfig)
}

func TestEngine_Defaults(t *testing.T) {
	e, err := NewEngine(referenceSchedule(), domain.PickerConfig{TotalDuration: 60})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultGridMinutes, e.Config().GridMinutes)
	assert.Equal(t, domain.DefaultPixelsPerMinute, e.Config().PixelsPerMinute)
	assert.Len(t, e.Gaps(), 3)
	assert.Len(t, e.Slots(), 12)
	assert.True(t, e.HasAvailability())
	assert.Equal(t, StateIdle, e.State())
}

func TestEngine_AutoSelect(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)

	got, ok := e.AutoSelect()
	require.True(t, ok)
	assert.Equal(t, slot("09:00", "10:00"), got)

	// повторный вызов не меняет выбор и не вызывает callback
	got, ok = e.AutoSelect()
	require.True(t, ok)
	assert.Equal(t, slot("09:00", "10:00"), got)

	assert.Equal(t, []slotChange{{start: "09:00", source: domain.SourceAuto}}, rec.changes)
}

func TestEngine_AutoSelect_NoAvailability(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 300)

	_, ok := e.AutoSelect()
	assert.False(t, ok)
	assert.False(t, e.HasAvailability())
	_, selected := e.Selected()
	assert.False(t, selected)
	assert.Empty(t, rec.changes)
}

func TestEngine_Select(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)

	got, err := e.Select(tod("11:30"))
	require.NoError(t, err)
	assert.Equal(t, slot("11:30", "12:30"), got)

	// тот же слот повторно - без уведомления
	_, err = e.Select(tod("11:30"))
	require.NoError(t, err)

	_, err = e.Select(tod("12:30"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	_, err = e.Select(tod("11:15"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, slot("11:30", "12:30"), selected)
	assert.Equal(t, []slotChange{{start: "11:30", source: domain.SourceTap}}, rec.changes)
}

func TestEngine_DragCommit(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)
	e.AutoSelect()

	anchor, err := e.BeginDrag()
	require.NoError(t, err)
	assert.Equal(t, 0.0, anchor)
	assert.Equal(t, StateDragging, e.State())

	// 09:00 -> 12:45 это 225 минут, 450 пикселей
	_, err = e.MoveDrag(100)
	require.NoError(t, err)
	live, err := e.MoveDrag(450)
	require.NoError(t, err)
	assert.Equal(t, 450.0, live)
	assert.Equal(t, 450.0, e.LiveOffset())

	// во время перетаскивания выбор не меняется
	selected, _ := e.Selected()
	assert.Equal(t, "09:00", selected.StartTime.String())

	preview, ok := e.Preview()
	require.True(t, ok)
	assert.Equal(t, "12:00", preview.StartTime.String())

	res, err := e.EndDrag()
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.False(t, res.Reverted)
	assert.True(t, res.HasSlot)
	assert.Equal(t, slot("12:00", "13:00"), res.Slot)
	assert.Equal(t, 450.0, res.FromOffset)
	assert.Equal(t, 360.0, res.ToOffset)
	assert.Equal(t, StateIdle, e.State())
	assert.Equal(t, 360.0, e.LiveOffset())

	assert.Equal(t, []slotChange{
		{start: "09:00", source: domain.SourceAuto},
		{start: "12:00", source: domain.SourceDrag},
	}, rec.changes)
}

func TestEngine_DragAnchorsAtCommittedSlot(t *testing.T) {
	e, _ := newTestEngine(t, referenceSchedule(), 60)
	_, err := e.Select(tod("14:00"))
	require.NoError(t, err)

	anchor, err := e.BeginDrag()
	require.NoError(t, err)
	assert.Equal(t, 600.0, anchor)

	// сдвиг на 60 минут влево от 14:00 попадает в обед, ближайший слот 12:00
	_, err = e.MoveDrag(-120)
	require.NoError(t, err)

	res, err := e.EndDrag()
	require.NoError(t, err)
	assert.Equal(t, "12:00", res.Slot.StartTime.String())
}

func TestEngine_DragToSameSlotDoesNotNotify(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)
	e.AutoSelect()

	_, err := e.BeginDrag()
	require.NoError(t, err)
	_, err = e.MoveDrag(10)
	require.NoError(t, err)

	res, err := e.EndDrag()
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.Equal(t, "09:00", res.Slot.StartTime.String())
	assert.Len(t, rec.changes, 1)
}

func TestEngine_DragRevertsWhenNothingFits(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 300)

	_, err := e.BeginDrag()
	require.NoError(t, err)
	_, err = e.MoveDrag(200)
	require.NoError(t, err)

	res, err := e.EndDrag()
	require.NoError(t, err)
	assert.True(t, res.Reverted)
	assert.False(t, res.Committed)
	assert.False(t, res.HasSlot)
	assert.Equal(t, 200.0, res.FromOffset)
	assert.Equal(t, 0.0, res.ToOffset)
	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, rec.changes)
}

func TestEngine_ReplaceScheduleAbortsGesture(t *testing.T) {
	schedule := referenceSchedule()
	e, rec := newTestEngine(t, schedule, 60)
	_, err := e.Select(tod("15:00"))
	require.NoError(t, err)

	_, err = e.BeginDrag()
	require.NoError(t, err)

	// расписание меняется посреди жеста: день полностью занят
	full := schedule
	full.Bookings = []domain.TimeRange{rng("09:00", "18:00")}
	aborted := e.ReplaceSchedule(full)
	assert.True(t, aborted)
	assert.Equal(t, StateIdle, e.State())

	_, err = e.EndDrag()
	assert.ErrorIs(t, err, ErrNoActiveGesture)

	_, ok := e.Selected()
	assert.False(t, ok, "selection that is no longer legal must be dropped")
	assert.Len(t, rec.changes, 1)
}

func TestEngine_ReplaceScheduleKeepsLegalSelection(t *testing.T) {
	e, _ := newTestEngine(t, referenceSchedule(), 60)
	_, err := e.Select(tod("15:00"))
	require.NoError(t, err)

	updated := referenceSchedule()
	updated.Bookings = append(updated.Bookings, rng("09:00", "10:00"))
	aborted := e.ReplaceSchedule(updated)
	assert.False(t, aborted)

	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "15:00", selected.StartTime.String())
	assert.Len(t, e.Gaps(), 2)
}

func TestEngine_ReplaceScheduleReselectsEarliest(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)
	_, err := e.Select(tod("09:00"))
	require.NoError(t, err)

	updated := referenceSchedule()
	updated.Bookings = append(updated.Bookings, rng("09:00", "10:00"))
	e.ReplaceSchedule(updated)

	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "10:30", selected.StartTime.String())
	require.Len(t, rec.changes, 2)
	assert.Equal(t, slotChange{start: "10:30", source: domain.SourceAuto}, rec.changes[1])
}

func TestEngine_ReplaceEmptyScheduleWithAvailability(t *testing.T) {
	e, rec := newTestEngine(t, domain.Schedule{}, 60)

	_, ok := e.AutoSelect()
	require.False(t, ok)
	assert.False(t, e.HasAvailability())

	e.ReplaceSchedule(referenceSchedule())

	assert.Len(t, e.Slots(), 12)
	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "09:00", selected.StartTime.String())
	assert.Equal(t, []slotChange{{start: "09:00", source: domain.SourceAuto}}, rec.changes)
}

func TestEngine_RevertToPreviousSelection(t *testing.T) {
	e, _ := newTestEngine(t, referenceSchedule(), 60)
	_, err := e.Select(tod("11:00"))
	require.NoError(t, err)

	_, err = e.BeginDrag()
	require.NoError(t, err)
	_, err = e.MoveDrag(300)
	require.NoError(t, err)

	// ни один промежуток больше не вмещает слот
	e.schedule.Bookings = []domain.TimeRange{rng("09:00", "18:00")}
	e.gaps = FreeGapsOf(e.schedule)

	res, err := e.EndDrag()
	require.NoError(t, err)
	assert.True(t, res.Reverted)
	assert.True(t, res.HasSlot)
	assert.Equal(t, "11:00", res.Slot.StartTime.String())
	assert.Equal(t, e.SlotOffset(tod("11:00")), res.ToOffset)
}

func TestEngine_ReentrantDragAdoptsNewAnchor(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)
	e.AutoSelect()

	_, err := e.BeginDrag()
	require.NoError(t, err)
	_, err = e.MoveDrag(600)
	require.NoError(t, err)

	// новый жест до завершения предыдущего
	anchor, err := e.BeginDrag()
	require.NoError(t, err)
	assert.Equal(t, 0.0, anchor)
	assert.Equal(t, 0.0, e.LiveOffset())

	res, err := e.EndDrag()
	require.NoError(t, err)
	assert.Equal(t, "09:00", res.Slot.StartTime.String())
	assert.Len(t, rec.changes, 1)
}

func TestEngine_GestureEventsOutOfOrder(t *testing.T) {
	e, _ := newTestEngine(t, referenceSchedule(), 60)

	_, err := e.MoveDrag(10)
	assert.ErrorIs(t, err, ErrNoActiveGesture)

	_, err = e.EndDrag()
	assert.ErrorIs(t, err, ErrNoActiveGesture)

	assert.False(t, e.CancelDrag())

	_, err = e.BeginDrag()
	require.NoError(t, err)
	_, err = e.Select(tod("11:00"))
	assert.ErrorIs(t, err, ErrGestureInProgress)

	assert.True(t, e.CancelDrag())
	assert.Equal(t, StateIdle, e.State())
}

func TestEngine_CancelDiscardsGesture(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)
	e.AutoSelect()

	_, err := e.BeginDrag()
	require.NoError(t, err)
	_, err = e.MoveDrag(700)
	require.NoError(t, err)

	assert.True(t, e.CancelDrag())

	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "09:00", selected.StartTime.String())
	assert.Equal(t, 0.0, e.LiveOffset())
	assert.Len(t, rec.changes, 1)
}

func TestEngine_Close(t *testing.T) {
	e, rec := newTestEngine(t, referenceSchedule(), 60)

	_, err := e.BeginDrag()
	require.NoError(t, err)
	_, err = e.MoveDrag(300)
	require.NoError(t, err)

	e.Close()
	assert.True(t, e.IsClosed())
	assert.Equal(t, StateIdle, e.State())

	_, err = e.EndDrag()
	assert.ErrorIs(t, err, ErrEngineClosed)
	_, err = e.BeginDrag()
	assert.ErrorIs(t, err, ErrEngineClosed)
	_, err = e.MoveDrag(1)
	assert.ErrorIs(t, err, ErrEngineClosed)
	_, err = e.Select(tod("09:00"))
	assert.ErrorIs(t, err, ErrEngineClosed)
	_, ok := e.AutoSelect()
	assert.False(t, ok)

	assert.Empty(t, rec.changes)
}

func TestEngine_SnapDeterminism(t *testing.T) {
	for _, offset := range []float64{0, 33, 450, 451, 780, 1079} {
		var results []domain.Slot
		for i := 0; i < 2; i++ {
			e, _ := newTestEngine(t, referenceSchedule(), 60)
			_, err := e.BeginDrag()
			require.NoError(t, err)
			_, err = e.MoveDrag(offset)
			require.NoError(t, err)
			res, err := e.EndDrag()
			require.NoError(t, err)
			results = append(results, res.Slot)
		}
		assert.Equal(t, results[0], results[1], "offset %v", offset)
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "dragging", StateDragging.String())
	assert.Equal(t, "resolving", StateResolving.String())
	assert.Equal(t, "unknown", State(42).String())
}
