package ledger

import (
	"time"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents a request to book a transaction.
// Omitted amounts are zero and an omitted date means today.
type CreateTransactionRequest struct {
	CustomerID      uuid.UUID       `json:"customer_id" binding:"required"`
	Date            string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	WorkDescription string          `json:"work_description" binding:"required,min=1,max=500"`
	GoldIn          decimal.Decimal `json:"gold_in"`
	GoldOut         decimal.Decimal `json:"gold_out"`
	CashIn          decimal.Decimal `json:"cash_in"`
	LabourCharge    decimal.Decimal `json:"labour_charge"`
	Remarks         string          `json:"remarks" binding:"max=2000"`
}

// UpdateTransactionRequest replaces every editable field of a transaction.
// The customer cannot be changed.
type UpdateTransactionRequest struct {
	Date            string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	WorkDescription string          `json:"work_description" binding:"required,min=1,max=500"`
	GoldIn          decimal.Decimal `json:"gold_in"`
	GoldOut         decimal.Decimal `json:"gold_out"`
	CashIn          decimal.Decimal `json:"cash_in"`
	LabourCharge    decimal.Decimal `json:"labour_charge"`
	Remarks         string          `json:"remarks" binding:"max=2000"`
}

// TransactionListFilter represents filter options for the transaction list
type TransactionListFilter struct {
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Date            string          `json:"date"`
	WorkDescription string          `json:"work_description"`
	GoldIn          decimal.Decimal `json:"gold_in"`
	GoldOut         decimal.Decimal `json:"gold_out"`
	CashIn          decimal.Decimal `json:"cash_in"`
	LabourCharge    decimal.Decimal `json:"labour_charge"`
	Remarks         string          `json:"remarks,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BalanceResponse is a customer's net gold and money position
type BalanceResponse struct {
	CustomerID        uuid.UUID       `json:"customer_id"`
	GoldBalance       decimal.Decimal `json:"gold_balance"`
	MoneyBalance      decimal.Decimal `json:"money_balance"`
	TransactionCount  int64           `json:"transaction_count"`
	TotalGoldIn       decimal.Decimal `json:"total_gold_in"`
	TotalGoldOut      decimal.Decimal `json:"total_gold_out"`
	TotalCashIn       decimal.Decimal `json:"total_cash_in"`
	TotalLabourCharge decimal.Decimal `json:"total_labour_charge"`
}

// StatementLineResponse is a transaction with the running balance after it
type StatementLineResponse struct {
	TransactionResponse
	RunningGoldBalance  decimal.Decimal `json:"running_gold_balance"`
	RunningMoneyBalance decimal.Decimal `json:"running_money_balance"`
}

// StatementResponse lists a customer's transactions oldest first with
// running balances
type StatementResponse struct {
	CustomerID          uuid.UUID               `json:"customer_id"`
	CustomerName        string                  `json:"customer_name"`
	Lines               []StatementLineResponse `json:"lines"`
	ClosingGoldBalance  decimal.Decimal         `json:"closing_gold_balance"`
	ClosingMoneyBalance decimal.Decimal         `json:"closing_money_balance"`
}

// ToTransactionResponse converts a domain Transaction to TransactionResponse
func ToTransactionResponse(t *ledger.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		CustomerID:      t.CustomerID,
		CustomerName:    t.CustomerName,
		Date:            t.Date.Format(ledger.DateLayout),
		WorkDescription: t.WorkDescription,
		GoldIn:          t.GoldIn,
		GoldOut:         t.GoldOut,
		CashIn:          t.CashIn,
		LabourCharge:    t.LabourCharge,
		Remarks:         t.Remarks,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// ToBalanceResponse builds the balance view of a customer's totals
func ToBalanceResponse(customerID uuid.UUID, totals ledger.Totals) BalanceResponse {
	bal := totals.Balance()
	return BalanceResponse{
		CustomerID:        customerID,
		GoldBalance:       bal.Gold,
		MoneyBalance:      bal.Money,
		TransactionCount:  totals.Count,
		TotalGoldIn:       totals.GoldIn,
		TotalGoldOut:      totals.GoldOut,
		TotalCashIn:       totals.CashIn,
		TotalLabourCharge: totals.LabourCharge,
	}
}
