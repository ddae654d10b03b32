package timeline

import (
	"slices"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// State of the drag gesture state machine
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResolving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// SlotChangeFunc is invoked whenever the committed selection changes.
// start is always a legal, grid-aligned slot start.
type SlotChangeFunc func(start types.TimeOfDay, source domain.SlotChangeSource)

// Resolution is the outcome of a finished drag gesture. The renderer animates
// the block from FromOffset to ToOffset however it likes.
type Resolution struct {
	Slot       domain.Slot // Выбранный слот после завершения жеста (если HasSlot)
	HasSlot    bool
	Committed  bool // Найден допустимый слот, он зафиксирован
	Reverted   bool // Допустимого слота нет, возврат к прежней позиции
	FromOffset float64
	ToOffset   float64
}

// Option configures an Engine
type Option func(*Engine)

// WithSlotChangeHandler sets the onSlotChange callback
func WithSlotChangeHandler(fn SlotChangeFunc) Option {
	return func(e *Engine) {
		e.onSlotChange = fn
	}
}

// Engine holds availability for one schedule and runs the
// Idle -> Dragging -> Resolving -> Idle gesture cycle on top of it.
//
// Engine is not safe for concurrent use; events must be delivered in order
// from a single goroutine (or under the caller's lock).
type Engine struct {
	cfg      domain.PickerConfig
	schedule domain.Schedule
	gaps     []domain.TimeRange
	slots    []domain.Slot

	selected    domain.Slot
	hasSelected bool

	state  State
	anchor float64
	live   float64
	closed bool

	onSlotChange SlotChangeFunc
}

// NewEngine validates cfg (zero grid and scale fall back to defaults) and
// computes gaps and slots for schedule.
func NewEngine(schedule domain.Schedule, cfg domain.PickerConfig, opts ...Option) (*Engine, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	e.recompute(schedule)

	return e, nil
}

func (e *Engine) recompute(schedule domain.Schedule) {
	e.schedule = schedule
	e.gaps = FreeGapsOf(schedule)
	e.slots = GenerateSlots(e.gaps, e.cfg.TotalDuration, e.cfg.GridMinutes)
}

func (e *Engine) Config() domain.PickerConfig {
	return e.cfg
}

func (e *Engine) WorkHours() domain.TimeRange {
	return e.schedule.WorkHours
}

// Gaps returns a copy of the free gaps
func (e *Engine) Gaps() []domain.TimeRange {
	return slices.Clone(e.gaps)
}

// Slots returns a copy of the bookable slots
func (e *Engine) Slots() []domain.Slot {
	return slices.Clone(e.slots)
}

func (e *Engine) Periods() []domain.PeriodGroup {
	return GroupByPeriod(e.slots)
}

// HasAvailability reports whether at least one slot exists
func (e *Engine) HasAvailability() bool {
	return len(e.slots) > 0
}

func (e *Engine) Selected() (domain.Slot, bool) {
	return e.selected, e.hasSelected
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) IsClosed() bool {
	return e.closed
}

// SlotOffset returns the canonical pixel position of a slot start
func (e *Engine) SlotOffset(start types.TimeOfDay) float64 {
	return OffsetOf(e.schedule.WorkHours.From, start, e.cfg.PixelsPerMinute)
}

// LiveOffset returns the current pointer offset while dragging, otherwise
// the committed slot offset (or 0 when nothing is selected).
func (e *Engine) LiveOffset() float64 {
	if e.state == StateDragging {
		return e.live
	}
	return e.restingOffset()
}

func (e *Engine) restingOffset() float64 {
	if e.hasSelected {
		return e.SlotOffset(e.selected.StartTime)
	}
	return 0
}

// AutoSelect commits the earliest slot when nothing is selected yet.
// Returns false when the day has no availability.
func (e *Engine) AutoSelect() (domain.Slot, bool) {
	if e.closed {
		return domain.Slot{}, false
	}
	if e.hasSelected {
		return e.selected, true
	}

	slot, ok := EarliestSlot(e.gaps, e.cfg.TotalDuration, e.cfg.GridMinutes)
	if !ok {
		return domain.Slot{}, false
	}
	e.commit(slot, domain.SourceAuto)
	return slot, true
}

// Select commits the slot starting at start (tap selection)
func (e *Engine) Select(start types.TimeOfDay) (domain.Slot, error) {
	if e.closed {
		return domain.Slot{}, ErrEngineClosed
	}
	if e.state != StateIdle {
		return domain.Slot{}, ErrGestureInProgress
	}

	slot, ok := e.findSlot(start)
	if !ok {
		return domain.Slot{}, ErrSlotNotAvailable
	}
	e.commit(slot, domain.SourceTap)
	return slot, nil
}

// BeginDrag starts a gesture anchored at the committed slot position.
// A gesture that is still active is discarded without commit.
func (e *Engine) BeginDrag() (float64, error) {
	if e.closed {
		return 0, ErrEngineClosed
	}

	e.anchor = e.restingOffset()
	e.live = e.anchor
	e.state = StateDragging
	return e.anchor, nil
}

// MoveDrag applies the cumulative translation of the active gesture.
// No snapping happens here.
func (e *Engine) MoveDrag(translation float64) (float64, error) {
	if e.closed {
		return 0, ErrEngineClosed
	}
	if e.state != StateDragging {
		return 0, ErrNoActiveGesture
	}

	e.live = e.anchor + translation
	return e.live, nil
}

// Preview snaps the live offset without committing
func (e *Engine) Preview() (domain.Slot, bool) {
	if e.state != StateDragging {
		return e.selected, e.hasSelected
	}
	return Snap(e.schedule.WorkHours.From, e.gaps, e.cfg, e.live)
}

// EndDrag snaps the final offset to the nearest legal slot and commits it,
// or reverts to the previously committed slot when nothing fits.
func (e *Engine) EndDrag() (Resolution, error) {
	if e.closed {
		return Resolution{}, ErrEngineClosed
	}
	if e.state != StateDragging {
		return Resolution{}, ErrNoActiveGesture
	}

	e.state = StateResolving
	res := Resolution{FromOffset: e.live}

	slot, ok := Snap(e.schedule.WorkHours.From, e.gaps, e.cfg, e.live)
	if ok {
		e.commit(slot, domain.SourceDrag)
		res.Committed = true
	} else {
		res.Reverted = true
	}

	res.Slot, res.HasSlot = e.selected, e.hasSelected
	if e.hasSelected {
		res.ToOffset = e.SlotOffset(e.selected.StartTime)
	} else {
		res.ToOffset = e.anchor
	}

	e.resetGesture()
	return res, nil
}

// CancelDrag aborts the active gesture without commit.
// Returns false if there was nothing to cancel.
func (e *Engine) CancelDrag() bool {
	if e.state != StateDragging {
		return false
	}
	e.resetGesture()
	return true
}

// ReplaceSchedule recomputes availability wholesale. An active gesture is
// aborted; the committed slot survives only if it is still a legal slot.
// Without a surviving selection the earliest new slot is auto-selected.
// Returns true if a gesture was aborted.
func (e *Engine) ReplaceSchedule(schedule domain.Schedule) bool {
	aborted := e.CancelDrag()
	e.recompute(schedule)

	if e.hasSelected {
		if _, ok := e.findSlot(e.selected.StartTime); !ok {
			e.selected, e.hasSelected = domain.Slot{}, false
		}
	}
	if !e.hasSelected {
		e.AutoSelect()
	}
	return aborted
}

// Close aborts any gesture; the engine rejects further events
func (e *Engine) Close() {
	e.CancelDrag()
	e.closed = true
}

func (e *Engine) resetGesture() {
	e.state = StateIdle
	e.anchor = 0
	e.live = 0
}

func (e *Engine) findSlot(start types.TimeOfDay) (domain.Slot, bool) {
	for _, s := range e.slots {
		if s.StartTime == start {
			return s, true
		}
	}
	return domain.Slot{}, false
}

// commit stores the selection and notifies only when the start time changes
func (e *Engine) commit(slot domain.Slot, source domain.SlotChangeSource) {
	changed := !e.hasSelected || e.selected.StartTime != slot.StartTime
	e.selected, e.hasSelected = slot, true
	if changed && e.onSlotChange != nil {
		e.onSlotChange(slot.StartTime, source)
	}
}
