package report

import (
	"testing"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewDashboardStats(t *testing.T) {
	totals := ledger.Totals{
		GoldIn:       decimal.RequireFromString("25.12345"),
		GoldOut:      decimal.RequireFromString("5"),
		CashIn:       decimal.RequireFromString("1000.005"),
		LabourCharge: decimal.RequireFromString("200"),
		Count:        7,
	}
	jobs := map[workshop.JobStatus]int64{
		workshop.JobStatusInProgress: 3,
		workshop.JobStatusCompleted:  2,
		workshop.JobStatusDelivered:  10,
	}

	stats := NewDashboardStats(totals, jobs, 4)

	assert.True(t, stats.TotalGoldBalance.Equal(decimal.RequireFromString("20.123")))
	assert.True(t, stats.TotalMoneyBalance.Equal(decimal.RequireFromString("1200.01")))
	assert.Equal(t, int64(5), stats.ActiveJobsCount)
	assert.Equal(t, int64(4), stats.TotalCustomers)
	assert.Equal(t, int64(7), stats.TotalTransactions)
	assert.Equal(t, int64(10), stats.JobsByStatus[workshop.JobStatusDelivered])
}

func TestNewDashboardStats_Empty(t *testing.T) {
	stats := NewDashboardStats(ledger.Totals{}, nil, 0)

	assert.True(t, stats.TotalGoldBalance.IsZero())
	assert.True(t, stats.TotalMoneyBalance.IsZero())
	assert.Zero(t, stats.ActiveJobsCount)
	assert.Len(t, stats.JobsByStatus, 3)
}

func TestNewDashboardStats_CompletedJobsAreActive(t *testing.T) {
	stats := NewDashboardStats(ledger.Totals{}, map[workshop.JobStatus]int64{
		workshop.JobStatusCompleted: 1,
	}, 1)
	assert.Equal(t, int64(1), stats.ActiveJobsCount)

	stats = NewDashboardStats(ledger.Totals{}, map[workshop.JobStatus]int64{
		workshop.JobStatusDelivered: 1,
	}, 1)
	assert.Zero(t, stats.ActiveJobsCount)
}
