package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGorm(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_Options(t *testing.T) {
	gl, _ := newObservedGorm(gormlogger.Info,
		WithSlowThreshold(time.Second),
		WithIgnoreRecordNotFoundError(false),
	)
	assert.Equal(t, time.Second, gl.slowThreshold)
	assert.False(t, gl.ignoreRecordNotFoundError)
}

func TestGormLogger_LogModeClones(t *testing.T) {
	gl, _ := newObservedGorm(gormlogger.Info)

	warn, ok := gl.LogMode(gormlogger.Warn).(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, warn.logLevel)
	assert.Equal(t, gormlogger.Info, gl.logLevel)
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestIDKey, "req-9")

	t.Run("query at info is debug", func(t *testing.T) {
		gl, recorded := newObservedGorm(gormlogger.Info)
		gl.Trace(ctx, time.Now(), sqlFn("SELECT * FROM customers", 2), nil)

		entries := recorded.FilterMessage("SQL Query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, "req-9", entries[0].ContextMap()["request_id"])
	})

	t.Run("slow query is warn", func(t *testing.T) {
		gl, recorded := newObservedGorm(gormlogger.Warn, WithSlowThreshold(time.Millisecond))
		gl.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT SUM(gold_in) FROM transactions", 1), nil)

		assert.Equal(t, 1, recorded.FilterMessage("Slow SQL").Len())
	})

	t.Run("error is logged", func(t *testing.T) {
		gl, recorded := newObservedGorm(gormlogger.Error)
		gl.Trace(ctx, time.Now(), sqlFn("DELETE FROM jobs", 0), errors.New("conn reset"))

		assert.Equal(t, 1, recorded.FilterMessage("SQL Error").Len())
	})

	t.Run("record not found is skipped by default", func(t *testing.T) {
		gl, recorded := newObservedGorm(gormlogger.Error)
		gl.Trace(ctx, time.Now(), sqlFn("SELECT", 0), gormlogger.ErrRecordNotFound)

		assert.Zero(t, recorded.Len())
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		gl, recorded := newObservedGorm(gormlogger.Silent)
		gl.Trace(ctx, time.Now(), sqlFn("SELECT", 0), errors.New("x"))

		assert.Zero(t, recorded.Len())
	})
}

func TestGormLogger_Printf(t *testing.T) {
	gl, recorded := newObservedGorm(gormlogger.Warn)

	gl.Info(context.Background(), "hidden %d", 1)
	gl.Warn(context.Background(), "migrating %s", "customers")
	gl.Error(context.Background(), "failed %s", "jobs")

	assert.Equal(t, 0, recorded.FilterMessage("hidden 1").Len())
	assert.Equal(t, 1, recorded.FilterMessage("migrating customers").Len())
	assert.Equal(t, 1, recorded.FilterMessage("failed jobs").Len())
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Error, MapGormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("warn"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unknown"))
}
