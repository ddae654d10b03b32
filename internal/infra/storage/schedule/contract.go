package schedule

import (
	"context"
	"database/sql"

	"github.com/m04kA/SMC-ScheduleTimeline/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (соединение и транзакция)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB интерфейс подключения с поддержкой транзакций
type DB interface {
	DBExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*dbmetrics.Tx, error)
}
