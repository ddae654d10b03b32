package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/timeline"
)

const operationName = "get_available_slots"

// UseCase use case для получения доступных слотов на день
type UseCase struct {
	scheduleRepo ScheduleRepository
	defaults     domain.PickerConfig
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// defaults - параметры расчета по умолчанию из конфигурации сервиса, metrics может быть nil.
func NewUseCase(scheduleRepo ScheduleRepository, defaults domain.PickerConfig, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		defaults:     defaults,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s, inline=%t, duration=%d, grid=%d",
		req.ProviderID, req.Date.Format(domain.DateFormat), req.Schedule != nil, req.DurationMinutes, req.GridMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем конфигурацию расчета
	cfg := uc.defaults
	if req.DurationMinutes > 0 {
		cfg.TotalDuration = req.DurationMinutes
	}
	if req.GridMinutes > 0 {
		cfg.GridMinutes = req.GridMinutes
	}

	// 3. Получаем расписание
	schedule, issues, err := uc.loadSchedule(ctx, req)
	if err != nil {
		return nil, err
	}

	dropped := make([]string, 0, len(issues))
	for _, issue := range issues {
		uc.logger.Warn("GetAvailableSlots: dropped interval: %v", issue)
		dropped = append(dropped, issue.Error())
	}
	if uc.metrics != nil {
		uc.metrics.IntervalsDropped(operationName, len(issues))
	}

	// 4. Считаем доступность
	engine, err := timeline.NewEngine(schedule, cfg)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{
		ProviderID:       req.ProviderID,
		Date:             req.Date,
		DurationMinutes:  engine.Config().TotalDuration,
		GridMinutes:      engine.Config().GridMinutes,
		WorkHours:        engine.WorkHours(),
		Gaps:             engine.Gaps(),
		Slots:            engine.Slots(),
		Periods:          engine.Periods(),
		NoAvailability:   !engine.HasAvailability(),
		DroppedIntervals: dropped,
	}

	// 5. Слот по умолчанию - самый ранний
	if slot, ok := engine.AutoSelect(); ok {
		resp.DefaultSlot = &slot
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots in %d gaps for provider=%d, date=%s",
		len(resp.Slots), len(resp.Gaps), req.ProviderID, req.Date.Format(domain.DateFormat))

	return resp, nil
}

// loadSchedule берет расписание из запроса или из хранилища и отбрасывает некорректные интервалы
func (uc *UseCase) loadSchedule(ctx context.Context, req *Request) (domain.Schedule, []error, error) {
	if req.Schedule != nil {
		schedule, issues := timeline.ParseSchedule(*req.Schedule)
		return schedule, issues, nil
	}

	key := domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date}
	stored, err := uc.scheduleRepo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Warn("GetAvailableSlots: schedule not found for provider=%d, date=%s",
				req.ProviderID, req.Date.Format(domain.DateFormat))
			return domain.Schedule{}, nil, ErrScheduleNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return domain.Schedule{}, nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	schedule, issues := timeline.NormalizeSchedule(stored.Schedule)
	return schedule, issues, nil
}
