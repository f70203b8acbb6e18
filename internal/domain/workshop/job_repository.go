package workshop

import (
	"context"

	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// JobRepository defines the interface for job persistence.
// Filters understood by FindAll and Count: status (JobStatus),
// customer_id (uuid.UUID).
type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Job, error)

	// FindAll returns jobs newest first
	FindAll(ctx context.Context, filter shared.Filter) ([]Job, error)

	Save(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCustomer counts jobs that reference the customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// CountByStatus returns the number of jobs per status.
	// Statuses without jobs are absent from the map.
	CountByStatus(ctx context.Context) (map[JobStatus]int64, error)
}
