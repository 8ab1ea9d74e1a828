package telemetry

import (
	"context"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database query tracing.
type DBTracingConfig struct {
	Enabled         bool
	SlowQueryThresh time.Duration // queries above this get a slow_query span event
	LogFullSQL      bool          // include query variables in spans (dev only)
}

// DefaultDBTracingConfig returns the secure default configuration.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		Enabled:         false,
		SlowQueryThresh: 200 * time.Millisecond,
		LogFullSQL:      false,
	}
}

// RegisterDBTracing registers the otelgorm plugin on the GORM instance plus
// an after-callback that flags slow queries and marks errored spans.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	opts := []otelgorm.Option{
		otelgorm.WithDBName("postgresql"),
	}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}

	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	before := markQueryStart
	after := slowQueryCallback(cfg.SlowQueryThresh)
	if err := db.Callback().Create().Before("gorm:create").Register("tourbook_tracing:before_create", before); err != nil {
		return err
	}
	if err := db.Callback().Query().Before("gorm:query").Register("tourbook_tracing:before_query", before); err != nil {
		return err
	}
	if err := db.Callback().Update().Before("gorm:update").Register("tourbook_tracing:before_update", before); err != nil {
		return err
	}
	if err := db.Callback().Delete().Before("gorm:delete").Register("tourbook_tracing:before_delete", before); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("tourbook_tracing:after_create", after); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("tourbook_tracing:after_query", after); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("tourbook_tracing:after_update", after); err != nil {
		return err
	}
	if err := db.Callback().Delete().After("gorm:delete").Register("tourbook_tracing:after_delete", after); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
		zap.Bool("log_full_sql", cfg.LogFullSQL),
	)

	return nil
}

type contextKey string

const queryStartTimeKey contextKey = "tourbook_query_start_time"

func markQueryStart(db *gorm.DB) {
	if db.Statement.Context != nil {
		db.Statement.Context = context.WithValue(db.Statement.Context, queryStartTimeKey, time.Now())
	}
}

func slowQueryCallback(thresh time.Duration) func(*gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		if ctx == nil {
			return
		}

		span := trace.SpanFromContext(ctx)
		if span == nil || !span.IsRecording() {
			return
		}

		if db.Statement.RowsAffected >= 0 {
			span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		}
		if db.Statement.Table != "" {
			span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
		}

		// ErrRecordNotFound is expected application flow, not a span error.
		if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
			span.SetStatus(codes.Error, db.Error.Error())
			span.RecordError(db.Error)
		}

		if startTime, ok := ctx.Value(queryStartTimeKey).(time.Time); ok {
			elapsed := time.Since(startTime)
			if elapsed > thresh {
				span.SetAttributes(
					attribute.Bool("db.slow_query", true),
					attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
				)
				span.AddEvent("slow_query_warning", trace.WithAttributes(
					attribute.Int64("duration_ms", elapsed.Milliseconds()),
					attribute.Int64("threshold_ms", thresh.Milliseconds()),
				))
			}
		}
	}
}
