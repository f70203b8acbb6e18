package report

import (
	"context"
	"fmt"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/domain/report"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/goldledger/backend/internal/infrastructure/telemetry"
)

// DashboardService builds the workshop-wide summary
type DashboardService struct {
	customerRepo    partner.CustomerRepository
	transactionRepo ledger.TransactionRepository
	jobRepo         workshop.JobRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	customerRepo partner.CustomerRepository,
	transactionRepo ledger.TransactionRepository,
	jobRepo workshop.JobRepository,
) *DashboardService {
	return &DashboardService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		jobRepo:         jobRepo,
	}
}

// GetDashboard returns global balances and record counts
func (s *DashboardService) GetDashboard(ctx context.Context) (_ *report.DashboardStats, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "get")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	totals, err := s.transactionRepo.SumTotals(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	jobsByStatus, err := s.jobRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	customers, err := s.customerRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	stats := report.NewDashboardStats(totals, jobsByStatus, customers)
	telemetry.SetAttributes(span,
		"total_customers", stats.TotalCustomers,
		"total_transactions", stats.TotalTransactions,
		"active_jobs", stats.ActiveJobsCount,
	)
	return &stats, nil
}
