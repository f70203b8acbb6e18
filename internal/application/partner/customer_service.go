package partner

import (
	"context"
	"fmt"

	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DependentCounter counts ledger records that reference a customer
type DependentCounter interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo    partner.CustomerRepository
	transactionRepo DependentCounter
	jobRepo         DependentCounter
	logger          *zap.Logger
	metrics         *telemetry.LedgerMetrics
}

// NewCustomerService creates a new CustomerService.
// transactionRepo and jobRepo are consulted before a customer is deleted.
func NewCustomerService(
	customerRepo partner.CustomerRepository,
	transactionRepo DependentCounter,
	jobRepo DependentCounter,
	logger *zap.Logger,
) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		jobRepo:         jobRepo,
		logger:          logger,
	}
}

// SetLedgerMetrics sets the collector for deletion outcomes
func (s *CustomerService) SetLedgerMetrics(m *telemetry.LedgerMetrics) {
	s.metrics = m
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" || req.Notes != "" {
		if err := customer.SetContact(req.Phone, req.Notes); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.logger.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.Name))

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves customers sorted by name with optional search and pagination
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCustomerResponses(customers), total, nil
}

// Update replaces a customer's name, phone and notes.
// Names already copied onto transactions and jobs are left as they were.
func (s *CustomerService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.Phone, req.Notes); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Delete removes a customer that has no transactions and no jobs.
// Transactions are checked before jobs.
func (s *CustomerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return err
	}

	var deps partner.Dependents
	var err error

	deps.Transactions, err = s.transactionRepo.CountByCustomer(ctx, customerID)
	if err != nil {
		return fmt.Errorf("failed to count customer transactions: %w", err)
	}
	if deps.Transactions == 0 {
		deps.Jobs, err = s.jobRepo.CountByCustomer(ctx, customerID)
		if err != nil {
			return fmt.Errorf("failed to count customer jobs: %w", err)
		}
	}

	if err := partner.EnsureDeletable(deps); err != nil {
		s.logger.Warn("Customer deletion blocked",
			zap.String("customer_id", customerID.String()),
			zap.Int64("transactions", deps.Transactions),
			zap.Int64("jobs", deps.Jobs))
		dependent := telemetry.DependentTransactions
		if deps.Transactions == 0 {
			dependent = telemetry.DependentJobs
		}
		s.metrics.RecordDeleteRejected(ctx, dependent)
		return err
	}

	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return err
	}

	s.metrics.RecordCustomerDeleted(ctx)
	s.logger.Info("Customer deleted", zap.String("customer_id", customerID.String()))
	return nil
}
