package picker

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/timeline"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

// session одна открытая сессия выбора слота.
// Все обращения к engine выполняются под mu.
type session struct {
	mu        sync.Mutex
	id        uuid.UUID
	key       domain.ScheduleKey
	bound     bool // Расписание из хранилища, сессия получает его замены
	engine    *timeline.Engine
	events    []models.SlotChangeEvent
	expiresAt time.Time
}

func (s *session) appendEvent(start types.TimeOfDay, source domain.SlotChangeSource, at time.Time) {
	s.events = append(s.events, models.SlotChangeEvent{
		Seq:       len(s.events) + 1,
		StartTime: start,
		Source:    source,
		At:        at,
	})
}

func (s *session) matches(key domain.ScheduleKey) bool {
	return s.bound && s.key.ProviderID == key.ProviderID && s.key.Date.Equal(key.Date)
}

// snapshot собирает ответ; вызывается под s.mu
func (s *session) snapshot() *models.SessionResponse {
	cfg := s.engine.Config()

	resp := &models.SessionResponse{
		ID:              s.id,
		ProviderID:      s.key.ProviderID,
		State:           s.engine.State().String(),
		DurationMinutes: cfg.TotalDuration,
		GridMinutes:     cfg.GridMinutes,
		PixelsPerMinute: cfg.PixelsPerMinute,
		WorkHours:       s.engine.WorkHours(),
		Gaps:            s.engine.Gaps(),
		Periods:         s.engine.Periods(),
		NoAvailability:  !s.engine.HasAvailability(),
		Offset:          s.engine.LiveOffset(),
		Events:          slices.Clone(s.events),
		ExpiresAt:       s.expiresAt,
	}
	if !s.key.Date.IsZero() {
		resp.Date = s.key.Date.Format(domain.DateFormat)
	}
	if resp.Gaps == nil {
		resp.Gaps = []domain.TimeRange{}
	}
	if resp.Periods == nil {
		resp.Periods = []domain.PeriodGroup{}
	}
	if resp.Events == nil {
		resp.Events = []models.SlotChangeEvent{}
	}

	if slot, ok := s.engine.Selected(); ok {
		resp.Selected = &slot
	}
	if s.engine.State() == timeline.StateDragging {
		if slot, ok := s.engine.Preview(); ok {
			resp.Preview = &slot
		}
	}

	return resp
}
