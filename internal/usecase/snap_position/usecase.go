package snap_position

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ScheduleTimeline/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleTimeline/internal/timeline"
)

const operationName = "snap_position"

// UseCase привязка произвольной позиции к ближайшему допустимому слоту без состояния
type UseCase struct {
	scheduleRepo ScheduleRepository
	defaults     domain.PickerConfig
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case, metrics может быть nil
func NewUseCase(scheduleRepo ScheduleRepository, defaults domain.PickerConfig, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		defaults:     defaults,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет привязку позиции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SnapPosition: validation failed: %v", err)
		return nil, err
	}

	cfg := uc.defaults
	if req.DurationMinutes > 0 {
		cfg.TotalDuration = req.DurationMinutes
	}
	if req.GridMinutes > 0 {
		cfg.GridMinutes = req.GridMinutes
	}
	if req.PixelsPerMinute > 0 {
		cfg.PixelsPerMinute = req.PixelsPerMinute
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		uc.logger.Warn("SnapPosition: invalid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	schedule, issues, err := uc.loadSchedule(ctx, req)
	if err != nil {
		return nil, err
	}

	for _, issue := range issues {
		uc.logger.Warn("SnapPosition: dropped interval: %v", issue)
	}
	if uc.metrics != nil {
		uc.metrics.IntervalsDropped(operationName, len(issues))
	}

	workFrom := schedule.WorkHours.From
	resp := &Response{
		PointerMinute:   timeline.MinuteAt(workFrom, req.Offset, cfg.PixelsPerMinute),
		DurationMinutes: cfg.TotalDuration,
		GridMinutes:     cfg.GridMinutes,
		PixelsPerMinute: cfg.PixelsPerMinute,
	}

	slot, ok := timeline.Snap(workFrom, timeline.FreeGapsOf(schedule), cfg, req.Offset)
	if !ok {
		uc.logger.Info("SnapPosition: no slot fits offset=%.1f for provider=%d", req.Offset, req.ProviderID)
		return resp, nil
	}

	resp.Found = true
	resp.Slot = slot
	resp.SlotOffset = timeline.OffsetOf(workFrom, slot.StartTime, cfg.PixelsPerMinute)
	return resp, nil
}

// loadSchedule берет расписание из запроса или из хранилища и отбрасывает некорректные интервалы
func (uc *UseCase) loadSchedule(ctx context.Context, req *Request) (domain.Schedule, []error, error) {
	if req.Schedule != nil {
		schedule, issues := timeline.ParseSchedule(*req.Schedule)
		return schedule, issues, nil
	}

	stored, err := uc.scheduleRepo.Get(ctx, domain.ScheduleKey{ProviderID: req.ProviderID, Date: req.Date})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.Schedule{}, nil, ErrScheduleNotFound
		}
		uc.logger.Error("SnapPosition: failed to get schedule: %v", err)
		return domain.Schedule{}, nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	schedule, issues := timeline.NormalizeSchedule(stored.Schedule)
	return schedule, issues, nil
}
