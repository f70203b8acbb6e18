package ledger

import (
	"context"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
)

// BalanceService computes customer balances and statements
type BalanceService struct {
	transactionRepo ledger.TransactionRepository
	customerRepo    partner.CustomerRepository
}

// NewBalanceService creates a new BalanceService
func NewBalanceService(transactionRepo ledger.TransactionRepository, customerRepo partner.CustomerRepository) *BalanceService {
	return &BalanceService{
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
	}
}

// GetCustomerBalance sums a customer's transactions.
// An id with no transactions, known or not, yields zero balances.
func (s *BalanceService) GetCustomerBalance(ctx context.Context, customerID uuid.UUID) (*BalanceResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "balance", "customer", telemetry.SpanAttrCustomerID, customerID)
	defer span.End()

	totals, err := s.transactionRepo.SumTotals(ctx, &customerID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	response := ToBalanceResponse(customerID, totals)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrTransactionCount, totals.Count,
		telemetry.SpanAttrGoldBalance, response.GoldBalance,
		telemetry.SpanAttrMoneyBalance, response.MoneyBalance,
	)
	return &response, nil
}

// GetStatement returns the customer's transactions oldest first with
// running balances
func (s *BalanceService) GetStatement(ctx context.Context, customerID uuid.UUID) (*StatementResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.FindByCustomerChronological(ctx, customerID)
	if err != nil {
		return nil, err
	}

	lines, closing := ledger.BuildStatement(txs)
	response := &StatementResponse{
		CustomerID:          customer.ID,
		CustomerName:        customer.Name,
		Lines:               make([]StatementLineResponse, len(lines)),
		ClosingGoldBalance:  closing.Gold,
		ClosingMoneyBalance: closing.Money,
	}
	for i := range lines {
		response.Lines[i] = StatementLineResponse{
			TransactionResponse: ToTransactionResponse(&lines[i].Transaction),
			RunningGoldBalance:  lines[i].Running.Gold,
			RunningMoneyBalance: lines[i].Running.Money,
		}
	}
	return response, nil
}
