package picker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/picker/models"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/timeline"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

const (
	outcomeCommitted = "committed"
	outcomeReverted  = "reverted"
	outcomeCancelled = "cancelled"

	operationCreate = "create_session"
)

// Service реестр сессий выбора слота.
// Каждая сессия владеет своим timeline.Engine и защищена собственным мьютексом,
// события одной сессии обрабатываются строго по очереди.
type Service struct {
	repo         ScheduleRepository
	defaults     domain.PickerConfig
	ttl          time.Duration
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

// NewService создает новый экземпляр сервиса сессий.
// metrics может быть nil, если метрики выключены.
func NewService(
	repo ScheduleRepository,
	defaults domain.PickerConfig,
	ttl time.Duration,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		defaults:     defaults,
		ttl:          ttl,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sessions:     make(map[uuid.UUID]*session),
	}
}

// Create открывает сессию и сразу выбирает самый ранний слот
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	cfg := s.defaults
	if req.DurationMinutes > 0 {
		cfg.TotalDuration = req.DurationMinutes
	}
	if req.GridMinutes > 0 {
		cfg.GridMinutes = req.GridMinutes
	}
	if req.PixelsPerMinute > 0 {
		cfg.PixelsPerMinute = req.PixelsPerMinute
	}

	schedule, err := s.loadSchedule(ctx, req)
	if err != nil {
		return nil, err
	}

	sess := &session{
		id:    uuid.New(),
		key:   domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date},
		bound: req.Schedule == nil,
	}

	engine, err := timeline.NewEngine(schedule, cfg, timeline.WithSlotChangeHandler(
		func(start types.TimeOfDay, source domain.SlotChangeSource) {
			s.onSlotChange(sess, start, source)
		},
	))
	if err != nil {
		s.logger.Warn("Create: invalid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sess.mu.Lock()
	sess.engine = engine
	sess.expiresAt = s.timeProvider.Now().Add(s.ttl)
	engine.AutoSelect()
	resp := sess.snapshot()
	slots := len(engine.Slots())
	sess.mu.Unlock()

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionOpened()
	}

	s.logger.Info("Create: session %s opened for provider=%d (slots=%d)", sess.id, req.ProviderID, slots)

	return resp, nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(id uuid.UUID) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		resp = sess.snapshot()
		return nil
	})
	return resp, err
}

// Select выбирает слот касанием
func (s *Service) Select(req *models.SelectSlotRequest) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(req.SessionID, func(sess *session) error {
		if _, err := sess.engine.Select(req.StartTime); err != nil {
			return mapEngineError(err)
		}
		resp = sess.snapshot()
		return nil
	})
	return resp, err
}

// BeginDrag начинает жест перетаскивания. Незавершенный предыдущий жест отбрасывается.
func (s *Service) BeginDrag(id uuid.UUID) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		if sess.engine.State() == timeline.StateDragging {
			s.snapResolved(outcomeCancelled)
		}
		if _, err := sess.engine.BeginDrag(); err != nil {
			return mapEngineError(err)
		}
		resp = sess.snapshot()
		return nil
	})
	return resp, err
}

// MoveDrag применяет накопленное смещение жеста, без привязки к сетке
func (s *Service) MoveDrag(req *models.MoveDragRequest) (*models.SessionResponse, error) {
	if math.IsNaN(req.Translation) || math.IsInf(req.Translation, 0) {
		return nil, fmt.Errorf("%w: translation must be a finite number", ErrInvalidInput)
	}

	var resp *models.SessionResponse
	err := s.withSession(req.SessionID, func(sess *session) error {
		if _, err := sess.engine.MoveDrag(req.Translation); err != nil {
			return mapEngineError(err)
		}
		resp = sess.snapshot()
		return nil
	})
	return resp, err
}

// EndDrag привязывает позицию к ближайшему допустимому слоту или возвращает блок назад
func (s *Service) EndDrag(id uuid.UUID) (*models.ResolutionResponse, error) {
	var resp *models.ResolutionResponse
	err := s.withSession(id, func(sess *session) error {
		res, err := sess.engine.EndDrag()
		if err != nil {
			return mapEngineError(err)
		}

		if res.Committed {
			s.snapResolved(outcomeCommitted)
		} else {
			s.snapResolved(outcomeReverted)
			s.logger.Info("EndDrag: session %s reverted, no slot fits the duration", id)
		}

		resp = &models.ResolutionResponse{
			Session:    sess.snapshot(),
			Committed:  res.Committed,
			Reverted:   res.Reverted,
			FromOffset: res.FromOffset,
			ToOffset:   res.ToOffset,
		}
		return nil
	})
	return resp, err
}

// CancelDrag прерывает жест без фиксации
func (s *Service) CancelDrag(id uuid.UUID) (*models.SessionResponse, error) {
	var resp *models.SessionResponse
	err := s.withSession(id, func(sess *session) error {
		if sess.engine.CancelDrag() {
			s.snapResolved(outcomeCancelled)
		}
		resp = sess.snapshot()
		return nil
	})
	return resp, err
}

// Close закрывает сессию. Повторное закрытие - ErrSessionNotFound.
func (s *Service) Close(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	s.closeSession(sess)
	s.logger.Info("Close: session %s closed", id)
	return nil
}

// ScheduleChanged пересчитывает доступность в сессиях, привязанных к расписанию.
// Активный жест прерывается, выбранный слот сохраняется, только если он остался допустимым,
// иначе выбирается самый ранний слот нового расписания.
func (s *Service) ScheduleChanged(key domain.ScheduleKey, schedule domain.Schedule) {
	s.mu.RLock()
	affected := make([]*session, 0)
	for _, sess := range s.sessions {
		if sess.matches(key) {
			affected = append(affected, sess)
		}
	}
	s.mu.RUnlock()

	for _, sess := range affected {
		sess.mu.Lock()
		if !sess.engine.IsClosed() {
			if sess.engine.ReplaceSchedule(schedule) {
				s.snapResolved(outcomeCancelled)
				s.logger.Info("ScheduleChanged: gesture aborted in session %s", sess.id)
			}
		}
		sess.mu.Unlock()
	}

	if len(affected) > 0 {
		s.logger.Info("ScheduleChanged: %d sessions updated for provider=%d, date=%s",
			len(affected), key.ProviderID, key.Date.Format(domain.DateFormat))
	}
}

// Count возвращает число открытых сессий
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// withSession выполняет fn под мьютексом сессии и продлевает ее время жизни
func (s *Service) withSession(id uuid.UUID, fn func(sess *session) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := s.timeProvider.Now()
	if sess.engine.IsClosed() || now.After(sess.expiresAt) {
		return ErrSessionNotFound
	}
	sess.expiresAt = now.Add(s.ttl)

	return fn(sess)
}

func (s *Service) closeSession(sess *session) {
	sess.mu.Lock()
	if sess.engine.State() == timeline.StateDragging {
		s.snapResolved(outcomeCancelled)
	}
	sess.engine.Close()
	sess.mu.Unlock()

	if s.metrics != nil {
		s.metrics.SessionClosed()
	}
}

// onSlotChange вызывается движком под мьютексом сессии
func (s *Service) onSlotChange(sess *session, start types.TimeOfDay, source domain.SlotChangeSource) {
	sess.appendEvent(start, source, s.timeProvider.Now())
	if s.metrics != nil {
		s.metrics.SlotChanged(string(source))
	}
}

func (s *Service) snapResolved(outcome string) {
	if s.metrics != nil {
		s.metrics.SnapResolved(outcome)
	}
}

func (s *Service) loadSchedule(ctx context.Context, req *models.CreateSessionRequest) (domain.Schedule, error) {
	if req.Schedule != nil {
		schedule, issues := timeline.ParseSchedule(*req.Schedule)
		for _, issue := range issues {
			s.logger.Warn("Create: dropped interval: %v", issue)
		}
		s.intervalsDropped(len(issues))
		return schedule, nil
	}

	stored, err := s.repo.Get(ctx, domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.Schedule{}, ErrScheduleNotFound
		}
		s.logger.Error("Create: failed to get schedule: %v", err)
		return domain.Schedule{}, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	schedule, issues := timeline.NormalizeSchedule(stored.Schedule)
	for _, issue := range issues {
		s.logger.Warn("Create: dropped stored interval: %v", issue)
	}
	s.intervalsDropped(len(issues))
	return schedule, nil
}

func (s *Service) intervalsDropped(count int) {
	if s.metrics != nil {
		s.metrics.IntervalsDropped(operationCreate, count)
	}
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, timeline.ErrSlotNotAvailable):
		return ErrSlotNotAvailable
	case errors.Is(err, timeline.ErrNoActiveGesture):
		return ErrNoActiveGesture
	case errors.Is(err, timeline.ErrGestureInProgress):
		return ErrGestureInProgress
	case errors.Is(err, timeline.ErrEngineClosed):
		return ErrSessionNotFound
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
