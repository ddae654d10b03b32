package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DefaultStatsInterval период сбора статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// Recorder получатель метрик БД
type Recorder interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
	SetDBPoolStats(open, inUse, idle int)
}

// DB обертка над *sql.DB, замеряющая длительность запросов.
// Без Recorder работает как обычное соединение.
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение и запускает сбор статистики пула до закрытия stopCh
func Wrap(db *sql.DB, recorder Recorder, interval time.Duration, stopCh <-chan struct{}) *DB {
	w := &DB{db: db, recorder: recorder}
	go w.collectPoolStats(interval, stopCh)
	return w
}

// WrapWithDefault как Wrap с интервалом DefaultStatsInterval
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	return Wrap(db, recorder, DefaultStatsInterval, stopCh)
}

// Plain оборачивает соединение без сбора метрик
func Plain(db *sql.DB) *DB {
	return &DB{db: db}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	observe(d.recorder, operationOf(query), start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	observe(d.recorder, operationOf(query), start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	observe(d.recorder, operationOf(query), start, row.Err())
	return row
}

// BeginTx открывает транзакцию; запросы внутри нее замеряются тем же Recorder
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	observe(d.recorder, "begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, recorder: d.recorder}, nil
}

// Tx обертка над *sql.Tx
type Tx struct {
	tx       *sql.Tx
	recorder Recorder
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	observe(t.recorder, operationOf(query), start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	observe(t.recorder, operationOf(query), start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	observe(t.recorder, operationOf(query), start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	observe(t.recorder, "commit", start, err)
	return err
}

// Rollback не замеряется: после Commit он всегда возвращает sql.ErrTxDone
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

func observe(recorder Recorder, operation string, start time.Time, err error) {
	if recorder == nil {
		return
	}
	recorder.ObserveDBQuery(operation, time.Since(start), err)
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	if d.recorder == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.reportPoolStats()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d.reportPoolStats()
		}
	}
}

func (d *DB) reportPoolStats() {
	stats := d.db.Stats()
	d.recorder.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
}

// operationOf возвращает первое ключевое слово запроса в нижнем регистре
func operationOf(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
