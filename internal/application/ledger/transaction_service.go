package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TransactionService handles booking and maintenance of ledger transactions
type TransactionService struct {
	transactionRepo ledger.TransactionRepository
	customerRepo    partner.CustomerRepository
	logger          *zap.Logger
	metrics         *telemetry.LedgerMetrics
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	transactionRepo ledger.TransactionRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransactionService{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
		logger:          logger,
	}
}

// SetLedgerMetrics sets the collector for booked transactions
func (s *TransactionService) SetLedgerMetrics(m *telemetry.LedgerMetrics) {
	s.metrics = m
}

// Create books a transaction against an existing customer and snapshots
// the customer's current name onto it
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) (*TransactionResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}

	tx, err := ledger.NewTransaction(customer.ID, customer.Name, date, req.WorkDescription, ledger.Amounts{
		GoldIn:       req.GoldIn,
		GoldOut:      req.GoldOut,
		CashIn:       req.CashIn,
		LabourCharge: req.LabourCharge,
	})
	if err != nil {
		return nil, err
	}
	tx.SetRemarks(req.Remarks)

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	s.metrics.RecordTransactionCreated(ctx)

	s.logger.Info("Transaction booked",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("gold_net", tx.GoldNet().String()),
		zap.String("money_net", tx.MoneyNet().String()))

	response := ToTransactionResponse(tx)
	return &response, nil
}

// GetByID retrieves a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTransactionResponse(tx)
	return &response, nil
}

// List retrieves transactions newest date first
func (s *TransactionService) List(ctx context.Context, filter TransactionListFilter) ([]TransactionResponse, int64, error) {
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

	if filter.CustomerID != "" {
		customerID, err := uuid.Parse(filter.CustomerID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "customer_id must be a valid UUID")
		}
		domainFilter.Filters["customer_id"] = customerID
	}
	if filter.DateFrom != "" {
		from, err := ledger.ParseDate(filter.DateFrom)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Filters["date_from"] = from
	}
	if filter.DateTo != "" {
		to, err := ledger.ParseDate(filter.DateTo)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Filters["date_to"] = to
	}

	txs, err := s.transactionRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.transactionRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, len(txs))
	for i := range txs {
		responses[i] = ToTransactionResponse(&txs[i])
	}
	return responses, total, nil
}

// Update replaces the date, description, amounts and remarks of a transaction
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, req UpdateTransactionRequest) (*TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = tx.Date
	}

	if err := tx.Update(date, req.WorkDescription, ledger.Amounts{
		GoldIn:       req.GoldIn,
		GoldOut:      req.GoldOut,
		CashIn:       req.CashIn,
		LabourCharge: req.LabourCharge,
	}, req.Remarks); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	response := ToTransactionResponse(tx)
	return &response, nil
}

// Delete removes a transaction
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Transaction deleted", zap.String("transaction_id", id.String()))
	return nil
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return ledger.ParseDate(s)
}
