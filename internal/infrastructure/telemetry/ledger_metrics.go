package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when a metrics collector is built without a meter
var ErrMeterNil = errors.New("telemetry: meter is nil")

// Dependent kinds reported when a customer deletion is refused
const (
	DependentTransactions = "transactions"
	DependentJobs         = "jobs"
)

// LedgerMetrics counts ledger events: refused and completed customer
// deletions, recorded transactions and job status changes.
// A nil *LedgerMetrics records nothing.
type LedgerMetrics struct {
	deleteRejectedTotal     *Counter
	customerDeletedTotal    *Counter
	transactionCreatedTotal *Counter
	jobStatusChangedTotal   *Counter
}

// NewLedgerMetrics creates the ledger instruments on meter
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &LedgerMetrics{}
	var err error
	if m.deleteRejectedTotal, err = NewCounter(meter, "ledger_customer_delete_rejected_total",
		"Customer deletions refused because dependents exist", "{request}"); err != nil {
		return nil, err
	}
	if m.customerDeletedTotal, err = NewCounter(meter, "ledger_customer_deleted_total",
		"Customers deleted", "{customer}"); err != nil {
		return nil, err
	}
	if m.transactionCreatedTotal, err = NewCounter(meter, "ledger_transaction_created_total",
		"Transactions recorded", "{transaction}"); err != nil {
		return nil, err
	}
	if m.jobStatusChangedTotal, err = NewCounter(meter, "ledger_job_status_changed_total",
		"Job status changes by new status", "{change}"); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordDeleteRejected counts a refused deletion. dependent is
// DependentTransactions or DependentJobs.
func (m *LedgerMetrics) RecordDeleteRejected(ctx context.Context, dependent string) {
	if m == nil {
		return
	}
	m.deleteRejectedTotal.Inc(ctx, AttrDependent.String(dependent))
}

// RecordCustomerDeleted counts a completed deletion
func (m *LedgerMetrics) RecordCustomerDeleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.customerDeletedTotal.Inc(ctx)
}

// RecordTransactionCreated counts a recorded transaction
func (m *LedgerMetrics) RecordTransactionCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.transactionCreatedTotal.Inc(ctx)
}

// RecordJobStatusChange counts a move to status
func (m *LedgerMetrics) RecordJobStatusChange(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.jobStatusChangedTotal.Inc(ctx, AttrJobStatus.String(status))
}
