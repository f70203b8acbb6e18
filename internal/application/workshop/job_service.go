package workshop

import (
	"context"
	"fmt"
	"time"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/goldledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// JobService handles work-order operations
type JobService struct {
	jobRepo      workshop.JobRepository
	customerRepo partner.CustomerRepository
	metrics      *telemetry.LedgerMetrics
}

// NewJobService creates a new JobService
func NewJobService(jobRepo workshop.JobRepository, customerRepo partner.CustomerRepository) *JobService {
	return &JobService{
		jobRepo:      jobRepo,
		customerRepo: customerRepo,
	}
}

// SetLedgerMetrics sets the collector for status changes
func (s *JobService) SetLedgerMetrics(m *telemetry.LedgerMetrics) {
	s.metrics = m
}

// Create opens a job for an existing customer
func (s *JobService) Create(ctx context.Context, req CreateJobRequest) (*JobResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	job, err := workshop.NewJob(customer.ID, customer.Name, req.WorkDescription)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		status, err := workshop.ParseJobStatus(req.Status)
		if err != nil {
			return nil, err
		}
		if err := job.ChangeStatus(status); err != nil {
			return nil, err
		}
	}

	if req.ExpectedDelivery != "" {
		date, err := ledger.ParseDate(req.ExpectedDelivery)
		if err != nil {
			return nil, err
		}
		job.SetExpectedDelivery(&date)
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	response := ToJobResponse(job)
	return &response, nil
}

// GetByID retrieves a job by ID
func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToJobResponse(job)
	return &response, nil
}

// List retrieves jobs newest first, optionally filtered by status or customer
func (s *JobService) List(ctx context.Context, filter JobListFilter) ([]JobResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}

	if filter.Status != "" {
		status, err := workshop.ParseJobStatus(filter.Status)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Filters["status"] = status
	}
	if filter.CustomerID != "" {
		customerID, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "customer_id must be a valid UUID")
		}
		domainFilter.Filters["customer_id"] = customerID
	}

	jobs, err := s.jobRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.jobRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]JobResponse, len(jobs))
	for i := range jobs {
		responses[i] = ToJobResponse(&jobs[i])
	}
	return responses, total, nil
}

// Update changes the fields present in the request
func (s *JobService) Update(ctx context.Context, id uuid.UUID, req UpdateJobRequest) (*JobResponse, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.WorkDescription != nil {
		if err := job.UpdateDescription(*req.WorkDescription); err != nil {
			return nil, err
		}
	}
	var changedTo workshop.JobStatus
	if req.Status != nil {
		status, err := workshop.ParseJobStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if status != job.Status {
			changedTo = status
		}
		if err := job.ChangeStatus(status); err != nil {
			return nil, err
		}
	}
	if req.ExpectedDelivery != nil {
		var date *time.Time
		if *req.ExpectedDelivery != "" {
			d, err := ledger.ParseDate(*req.ExpectedDelivery)
			if err != nil {
				return nil, err
			}
			date = &d
		}
		job.SetExpectedDelivery(date)
		job.Touch()
	}

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to save job: %w", err)
	}
	if changedTo != "" {
		s.metrics.RecordJobStatusChange(ctx, string(changedTo))
	}

	response := ToJobResponse(job)
	return &response, nil
}

// UpdateStatus moves a job to the given status
func (s *JobService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*JobResponse, error) {
	return s.Update(ctx, id, UpdateJobRequest{Status: &status})
}

// Delete removes a job
func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.jobRepo.Delete(ctx, id)
}
