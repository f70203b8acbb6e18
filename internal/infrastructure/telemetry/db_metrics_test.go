package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type meteredJob struct {
	ID     uint   `gorm:"primaryKey"`
	Status string `gorm:"size:20"`
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRegisterDBMetrics_DisabledProvider(t *testing.T) {
	db := openSQLite(t)
	mp, err := NewMeterProvider(context.Background(), MetricsConfig{Enabled: false}, nil)
	require.NoError(t, err)

	m, err := RegisterDBMetrics(context.Background(), db, mp, DBMetricsConfig{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestRegisterDBMetrics_CountsQueries(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&meteredJob{}))
	mp, reader := newTestMeterProvider(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m, err := RegisterDBMetrics(ctx, db, mp, DBMetricsConfig{PoolStatsInterval: time.Hour}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, m)
	defer m.Stop()

	require.NoError(t, db.Create(&meteredJob{Status: "in_progress"}).Error)
	require.NoError(t, db.Model(&meteredJob{}).Where("id = ?", 1).Update("status", "completed").Error)

	var job meteredJob
	require.NoError(t, db.First(&job, 1).Error)
	assert.ErrorIs(t, db.First(&job, 99).Error, gorm.ErrRecordNotFound)

	m.collectPoolStats(ctx)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_total",
		AttrDBOperation.String("INSERT"), AttrDBTable.String("metered_jobs")))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_total",
		AttrDBOperation.String("UPDATE"), AttrDBTable.String("metered_jobs")))
	assert.Equal(t, int64(2), counterValue(t, rm, "db_query_total",
		AttrDBOperation.String("SELECT"), AttrDBTable.String("metered_jobs")))
	// not-found is an expected outcome, not a failure
	assert.Zero(t, counterValue(t, rm, "db_query_error_total"))
	assert.NotNil(t, findMetricByName(rm, "db_pool_connections_max"))
}

func TestDBMetrics_RecordQuery(t *testing.T) {
	mp, reader := newTestMeterProvider(t)
	m, err := NewDBMetrics(mp.Meter("db.client"), DBMetricsConfig{SlowQueryThreshold: 50 * time.Millisecond}, nil)
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordQuery(ctx, "select", "transactions", 10*time.Millisecond, nil)
	m.RecordQuery(ctx, "select", "transactions", 80*time.Millisecond, nil)
	m.RecordQuery(ctx, "insert", "jobs", time.Millisecond, errors.New("constraint failed"))
	m.RecordQuery(ctx, "", "", time.Millisecond, gorm.ErrRecordNotFound)

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(2), counterValue(t, rm, "db_query_total",
		AttrDBOperation.String("SELECT"), AttrDBTable.String("transactions")))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_total",
		AttrDBOperation.String("UNKNOWN"), AttrDBTable.String("unknown")))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_error_total"))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_error_total", AttrDBTable.String("jobs")))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_slow_query_total", AttrDBTable.String("transactions")))
}

func TestDBMetrics_StopIsIdempotent(t *testing.T) {
	mp, _ := newTestMeterProvider(t)
	m, err := NewDBMetrics(mp.Meter("db.client"), DBMetricsConfig{}, nil)
	require.NoError(t, err)

	// no pool set: collection does not start
	m.StartPoolStatsCollection(context.Background())
	assert.NotPanics(t, func() {
		m.Stop()
		m.Stop()
	})
}

func TestDetectOperationType(t *testing.T) {
	tests := map[string]string{
		"SELECT COALESCE(SUM(gold_in),0) FROM transactions": "SELECT",
		"  insert into jobs (id) values (1)":                 "INSERT",
		"UPDATE jobs SET status = 'completed'":               "UPDATE",
		"delete from customers where id = 1":                 "DELETE",
		"PRAGMA foreign_keys = ON":                           "OTHER",
	}
	for sql, want := range tests {
		assert.Equal(t, want, detectOperationType(sql), sql)
	}
}
