package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleTimeline/internal/domain"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ScheduleTimeline/pkg/types"
)

const (
	schedulesTable = "provider_schedules"
	intervalsTable = "schedule_intervals"
)

// Repository репозиторий расписаний исполнителей
type Repository struct {
	db DB
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// Get получает расписание исполнителя на дату вместе с перерывами и бронированиями
func (r *Repository) Get(ctx context.Context, key domain.ScheduleKey) (*domain.StoredSchedule, error) {
	query, args, err := psqlbuilder.Select("work_from", "work_to", "updated_at").
		From(schedulesTable).
		Where(keyCondition(key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	stored := &domain.StoredSchedule{Key: key}
	var updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&stored.Schedule.WorkHours.From,
		&stored.Schedule.WorkHours.To,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %v", ErrScanRow, err)
	}
	stored.UpdatedAt = updatedAt.Time

	intervals, err := r.getIntervals(ctx, key)
	if err != nil {
		return nil, err
	}

	stored.Schedule.Breaks = make([]domain.TimeRange, 0)
	stored.Schedule.Bookings = make([]domain.TimeRange, 0)
	for _, interval := range intervals {
		switch interval.Kind {
		case domain.IntervalBreak:
			stored.Schedule.Breaks = append(stored.Schedule.Breaks, interval.TimeRange)
		case domain.IntervalBooking:
			stored.Schedule.Bookings = append(stored.Schedule.Bookings, interval.TimeRange)
		}
	}

	return stored, nil
}

func (r *Repository) getIntervals(ctx context.Context, key domain.ScheduleKey) ([]domain.BusyInterval, error) {
	query, args, err := psqlbuilder.Select("kind", "time_from", "time_to").
		From(intervalsTable).
		Where(keyCondition(key)).
		OrderBy("time_from ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getIntervals - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	intervals := make([]domain.BusyInterval, 0)
	for rows.Next() {
		var (
			interval domain.BusyInterval
			kind     string
			from, to types.TimeOfDay
		)
		if err := rows.Scan(&kind, &from, &to); err != nil {
			return nil, fmt.Errorf("%w: getIntervals - scan interval: %v", ErrScanRow, err)
		}
		interval.Kind = domain.IntervalKind(kind)
		interval.TimeRange = domain.TimeRange{From: from, To: to}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getIntervals - rows iteration: %v", ErrScanRow, err)
	}

	return intervals, nil
}

// Replace целиком заменяет расписание исполнителя на дату.
// Рабочие часы обновляются через upsert, перерывы и бронирования перезаписываются в одной транзакции.
func (r *Repository) Replace(ctx context.Context, stored *domain.StoredSchedule) (*domain.StoredSchedule, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	upsertQuery, upsertArgs, err := psqlbuilder.Insert(schedulesTable).
		Columns("provider_id", "schedule_date", "work_from", "work_to").
		Values(
			stored.Key.ProviderID,
			stored.Key.Date.Format(domain.DateFormat),
			stored.Schedule.WorkHours.From,
			stored.Schedule.WorkHours.To,
		).
		Suffix("ON CONFLICT (provider_id, schedule_date) DO UPDATE SET " +
			"work_from = EXCLUDED.work_from, work_to = EXCLUDED.work_to, updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := tx.QueryRowContext(ctx, upsertQuery, upsertArgs...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Replace - execute upsert: %v", ErrExecQuery, err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(intervalsTable).
		Where(keyCondition(stored.Key)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Replace - delete intervals: %v", ErrExecQuery, err)
	}

	if err := insertIntervals(ctx, tx, stored); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: Replace - commit: %v", ErrTransaction, err)
	}

	stored.UpdatedAt = updatedAt.Time
	return stored, nil
}

func insertIntervals(ctx context.Context, executor DBExecutor, stored *domain.StoredSchedule) error {
	if len(stored.Schedule.Breaks)+len(stored.Schedule.Bookings) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert(intervalsTable).
		Columns("provider_id", "schedule_date", "kind", "time_from", "time_to")

	date := stored.Key.Date.Format(domain.DateFormat)
	for _, b := range stored.Schedule.Breaks {
		insert = insert.Values(stored.Key.ProviderID, date, string(domain.IntervalBreak), b.From, b.To)
	}
	for _, b := range stored.Schedule.Bookings {
		insert = insert.Values(stored.Key.ProviderID, date, string(domain.IntervalBooking), b.From, b.To)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertIntervals - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertIntervals - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет расписание исполнителя на дату (интервалы удаляются каскадно)
func (r *Repository) Delete(ctx context.Context, key domain.ScheduleKey) error {
	query, args, err := psqlbuilder.Delete(schedulesTable).
		Where(keyCondition(key)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func keyCondition(key domain.ScheduleKey) squirrel.Eq {
	return squirrel.Eq{
		"provider_id":   key.ProviderID,
		"schedule_date": key.Date.Format(domain.DateFormat),
	}
}
