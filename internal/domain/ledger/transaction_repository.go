package ledger

import (
	"context"

	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionRepository defines the interface for transaction persistence.
// Filters understood by FindAll and Count: customer_id (uuid.UUID),
// date_from and date_to (time.Time, inclusive).
type TransactionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)

	// FindAll returns transactions newest date first
	FindAll(ctx context.Context, filter shared.Filter) ([]Transaction, error)

	// FindByCustomerChronological returns every transaction of a customer,
	// oldest first
	FindByCustomerChronological(ctx context.Context, customerID uuid.UUID) ([]Transaction, error)

	Save(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCustomer counts transactions that reference the customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// SumTotals aggregates the ledger columns. A nil customerID sums every
	// transaction in the store.
	SumTotals(ctx context.Context, customerID *uuid.UUID) (Totals, error)
}
