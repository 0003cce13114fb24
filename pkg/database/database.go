// Package database owns the process-wide PostgreSQL handle.
//
// The handle is a single connection guarded by a mutex: every caller runs
// inside WithTx, which holds the lock from BEGIN to COMMIT/ROLLBACK. Two
// transactions never interleave on the connection, and a caller observes
// either all of another caller's writes or none of them.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/pantry/pkg/logger"
)

const instrumentationName = "github.com/ghuser/pantry/pkg/database"

// Database is a mutex-guarded single-connection *sql.DB.
type Database struct {
	mu     sync.Mutex
	db     *sql.DB
	log    logger.Logger
	tracer trace.Tracer

	lockWait   metric.Float64Histogram
	txDuration metric.Float64Histogram
}

// New opens dsn with the pgx driver, restricts it to one connection and
// verifies it with a ping.
func New(ctx context.Context, dsn string, log logger.Logger) (*Database, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return Wrap(sqlDB, log), nil
}

// Wrap adopts an already opened *sql.DB.
func Wrap(sqlDB *sql.DB, log logger.Logger) *Database {
	meter := otel.Meter(instrumentationName)
	lockWait := histogram(meter, log, "db.lock.wait", "Time spent waiting for the connection lock.")
	txDuration := histogram(meter, log, "db.tx.duration", "Duration of transactions from BEGIN to COMMIT or ROLLBACK.")

	return &Database{
		db:         sqlDB,
		log:        log,
		tracer:     otel.Tracer(instrumentationName),
		lockWait:   lockWait,
		txDuration: txDuration,
	}
}

func histogram(meter metric.Meter, log logger.Logger, name, description string) metric.Float64Histogram {
	h, err := meter.Float64Histogram(name, metric.WithDescription(description), metric.WithUnit("s"))
	if err != nil {
		log.Warn("failed to create histogram", "name", name, "error", err)
		return noop.Float64Histogram{}
	}
	return h
}

// WithTx runs fn inside a serializable transaction while holding the
// connection lock. The transaction commits if fn returns nil and rolls back
// otherwise; fn must not retain tx after returning.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withTx(ctx, false, fn)
}

// WithReadTx is WithTx for read-only work.
func (d *Database) WithReadTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return d.withTx(ctx, true, fn)
}

func (d *Database) withTx(ctx context.Context, readOnly bool, fn func(tx *sql.Tx) error) (err error) {
	ctx, span := d.tracer.Start(ctx, "database.tx",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.Bool("db.read_only", readOnly),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	attrs := metric.WithAttributes(attribute.Bool("db.read_only", readOnly))
	waitStart := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lockWait.Record(ctx, time.Since(waitStart).Seconds(), attrs)

	txStart := time.Now()
	defer func() {
		d.txDuration.Record(ctx, time.Since(txStart).Seconds(), attrs,
			metric.WithAttributes(attribute.Bool("db.tx.committed", err == nil)))
	}()

	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable, ReadOnly: readOnly})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.log.ErrorContext(ctx, "rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Ping verifies the connection is alive. It waits for any in-flight transaction.
func (d *Database) Ping(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db.PingContext(ctx)
}

// DB exposes the raw handle for migrations and test fixtures. Statements run
// on it bypass the lock.
func (d *Database) DB() *sql.DB {
	return d.db
}

// Close closes the underlying handle.
func (d *Database) Close() error {
	return d.db.Close()
}
