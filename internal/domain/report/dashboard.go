package report

import (
	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/shopspring/decimal"
)

// DashboardStats is a read model of the workshop's overall position
type DashboardStats struct {
	TotalGoldBalance  decimal.Decimal              `json:"total_gold_balance"`
	TotalMoneyBalance decimal.Decimal              `json:"total_money_balance"`
	ActiveJobsCount   int64                        `json:"active_jobs_count"`
	TotalCustomers    int64                        `json:"total_customers"`
	TotalTransactions int64                        `json:"total_transactions"`
	JobsByStatus      map[workshop.JobStatus]int64 `json:"jobs_by_status"`
}

// NewDashboardStats builds the dashboard from global ledger totals, the job
// status histogram and the customer count. TotalTransactions comes from
// totals.Count.
func NewDashboardStats(totals ledger.Totals, jobsByStatus map[workshop.JobStatus]int64, customers int64) DashboardStats {
	bal := totals.Balance()

	byStatus := make(map[workshop.JobStatus]int64, len(workshop.AllJobStatuses()))
	for _, s := range workshop.AllJobStatuses() {
		byStatus[s] = jobsByStatus[s]
	}

	var active int64
	for _, s := range workshop.ActiveJobStatuses() {
		active += byStatus[s]
	}

	return DashboardStats{
		TotalGoldBalance:  bal.Gold,
		TotalMoneyBalance: bal.Money,
		ActiveJobsCount:   active,
		TotalCustomers:    customers,
		TotalTransactions: totals.Count,
		JobsByStatus:      byStatus,
	}
}
