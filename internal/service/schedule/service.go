package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/timeline"
)

const operationReplace = "replace_schedule"

// Service сервис для работы с расписаниями исполнителей
type Service struct {
	repo      ScheduleRepository
	metrics   MetricsRecorder
	logger    Logger
	listeners []ScheduleListener
}

// NewService создает новый экземпляр сервиса расписаний.
// metrics может быть nil, если метрики выключены.
func NewService(repo ScheduleRepository, metrics MetricsRecorder, logger Logger) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// Subscribe добавляет получателя уведомлений о замене расписания
func (s *Service) Subscribe(listener ScheduleListener) {
	s.listeners = append(s.listeners, listener)
}

// Get получает расписание исполнителя на дату
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	if err := validateKey(req.ProviderID, req.Date); err != nil {
		return nil, err
	}

	key := domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date}
	stored, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Get: repository error: provider=%d, date=%s: %v",
			req.ProviderID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromStoredSchedule(stored), nil
}

// Replace целиком заменяет расписание исполнителя на дату.
// Доступно только самому исполнителю.
// Некорректные перерывы и бронирования отбрасываются и возвращаются в DroppedIntervals;
// некорректные рабочие часы - ошибка ErrInvalidInput.
// После сохранения уведомляет подписчиков, чтобы прервать жесты в открытых сессиях.
func (s *Service) Replace(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Replace: replacing schedule for provider=%d, date=%s by user=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.UserID)

	// 1. Валидация входных данных
	if err := validateKey(req.ProviderID, req.Date); err != nil {
		s.logger.Warn("Replace: validation failed: %v", err)
		return nil, err
	}

	intervals := len(req.Data.Breaks) + len(req.Data.Bookings)
	if intervals > domain.MaxIntervalsPerSchedule {
		s.logger.Warn("Replace: too many intervals: %d", intervals)
		return nil, fmt.Errorf("%w: at most %d breaks and bookings are allowed", ErrInvalidInput, domain.MaxIntervalsPerSchedule)
	}

	// 2. Проверяем права доступа (только сам исполнитель)
	if req.UserID != req.ProviderID {
		s.logger.Warn("Replace: user=%d is not the owner of provider=%d schedule", req.UserID, req.ProviderID)
		return nil, ErrAccessDenied
	}

	// 3. Разбираем расписание, отбрасывая некорректные интервалы
	parsed, issues := timeline.ParseSchedule(req.Data)
	if !parsed.WorkHours.IsValid() {
		s.logger.Warn("Replace: invalid working hours for provider=%d: %v", req.ProviderID, issues)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, errors.Join(issues...))
	}

	dropped := make([]string, 0, len(issues))
	for _, issue := range issues {
		s.logger.Warn("Replace: dropped interval for provider=%d: %v", req.ProviderID, issue)
		dropped = append(dropped, issue.Error())
	}
	if s.metrics != nil {
		s.metrics.IntervalsDropped(operationReplace, len(issues))
	}

	// 4. Сохраняем
	key := domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date}
	stored, err := s.repo.Replace(ctx, &domain.StoredSchedule{Key: key, Schedule: parsed})
	if err != nil {
		s.logger.Error("Replace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	// 5. Уведомляем подписчиков
	s.notify(key, stored.Schedule)

	s.logger.Info("Replace: schedule replaced for provider=%d, date=%s (breaks=%d, bookings=%d, dropped=%d)",
		req.ProviderID, req.Date.Format(domain.DateFormat), len(parsed.Breaks), len(parsed.Bookings), len(dropped))

	resp := models.FromStoredSchedule(stored)
	resp.DroppedIntervals = dropped
	return resp, nil
}

// Delete удаляет расписание. Открытые сессии получают пустое расписание.
func (s *Service) Delete(ctx context.Context, req *models.DeleteScheduleRequest) error {
	if err := validateKey(req.ProviderID, req.Date); err != nil {
		return err
	}
	if req.UserID != req.ProviderID {
		s.logger.Warn("Delete: user=%d is not the owner of provider=%d schedule", req.UserID, req.ProviderID)
		return ErrAccessDenied
	}

	key := domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date}
	if err := s.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.notify(key, domain.Schedule{})

	s.logger.Info("Delete: schedule deleted for provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))
	return nil
}

func (s *Service) notify(key domain.ScheduleKey, schedule domain.Schedule) {
	for _, l := range s.listeners {
		l.ScheduleChanged(key, schedule)
	}
}
