package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/MDT-ScheduleService/pkg/metrics"
)

const defaultPoolStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB, собирающая метрики запросов и connection pool
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	dbName  string
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый сбор метрик пула
// с интервалом по умолчанию; сбор останавливается закрытием stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, dbName: dbName}
	go wrapped.collectPoolStats(defaultPoolStatsInterval, stopCh)
	return wrapped
}

// ExecContext выполняет запрос с учётом метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("exec", err == nil, time.Since(start))
	return res, err
}

// QueryContext выполняет выборку с учётом метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query", err == nil, time.Since(start))
	return rows, err
}

// QueryRowContext выполняет выборку одной строки с учётом метрик
// Ошибка видна только при Scan, поэтому здесь учитывается только длительность
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.metrics.ObserveDBQuery("query_row", true, time.Since(start))
	return row
}

// BeginTx начинает транзакцию; запросы внутри неё тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &metricsTx{tx: tx, metrics: d.metrics}, nil
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.SetDBPoolStats(d.dbName, stats.OpenConnections, stats.Idle, stats.InUse)
		}
	}
}

// metricsTx транзакция с учётом метрик запросов
type metricsTx struct {
	tx      *sql.Tx
	metrics *metrics.Metrics
}

func (t *metricsTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_exec", err == nil, time.Since(start))
	return res, err
}

func (t *metricsTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query", err == nil, time.Since(start))
	return rows, err
}

func (t *metricsTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.metrics.ObserveDBQuery("tx_query_row", true, time.Since(start))
	return row
}

func (t *metricsTx) Commit() error {
	return t.tx.Commit()
}

func (t *metricsTx) Rollback() error {
	return t.tx.Rollback()
}
