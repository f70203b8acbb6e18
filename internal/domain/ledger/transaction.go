package ledger

import (
	"strings"
	"time"

	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of a transaction date
const DateLayout = "2006-01-02"

// AmountScale is the number of decimal places an amount may carry
const AmountScale int32 = 4

// MaxAmount is the exclusive upper bound of a single amount
var MaxAmount = decimal.New(1, 14)

// ErrTransactionNotFound matches shared.ErrNotFound under errors.Is
var ErrTransactionNotFound = shared.NewDomainError("NOT_FOUND", "Transaction not found")

// Amounts are the four ledger columns of a transaction.
// Gold is in grams, cash and labour in the shop currency.
type Amounts struct {
	GoldIn       decimal.Decimal
	GoldOut      decimal.Decimal
	CashIn       decimal.Decimal
	LabourCharge decimal.Decimal
}

// Transaction records gold and cash movement against one customer.
// CustomerName is copied at creation and is not refreshed on rename.
type Transaction struct {
	shared.BaseEntity
	CustomerID      uuid.UUID
	CustomerName    string
	Date            time.Time
	WorkDescription string
	GoldIn          decimal.Decimal
	GoldOut         decimal.Decimal
	CashIn          decimal.Decimal
	LabourCharge    decimal.Decimal
	Remarks         string
}

// NewTransaction creates a transaction for an existing customer.
// A zero date means today.
func NewTransaction(customerID uuid.UUID, customerName string, date time.Time, workDescription string, amounts Amounts) (*Transaction, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}

	tx := &Transaction{
		BaseEntity:   shared.NewBaseEntity(),
		CustomerID:   customerID,
		CustomerName: customerName,
	}
	if err := tx.apply(date, workDescription, amounts); err != nil {
		return nil, err
	}
	return tx, nil
}

// Update replaces date, description, amounts and remarks.
// The owning customer cannot be changed.
func (t *Transaction) Update(date time.Time, workDescription string, amounts Amounts, remarks string) error {
	if err := t.apply(date, workDescription, amounts); err != nil {
		return err
	}
	t.Remarks = strings.TrimSpace(remarks)
	t.Touch()
	return nil
}

// SetRemarks sets the free-text remarks
func (t *Transaction) SetRemarks(remarks string) {
	t.Remarks = strings.TrimSpace(remarks)
}

// Amounts returns the ledger columns of the transaction
func (t *Transaction) Amounts() Amounts {
	return Amounts{
		GoldIn:       t.GoldIn,
		GoldOut:      t.GoldOut,
		CashIn:       t.CashIn,
		LabourCharge: t.LabourCharge,
	}
}

// GoldNet is gold received minus gold returned
func (t *Transaction) GoldNet() decimal.Decimal {
	return t.GoldIn.Sub(t.GoldOut)
}

// MoneyNet is cash received plus labour earned
func (t *Transaction) MoneyNet() decimal.Decimal {
	return t.CashIn.Add(t.LabourCharge)
}

func (t *Transaction) apply(date time.Time, workDescription string, amounts Amounts) error {
	workDescription = strings.TrimSpace(workDescription)
	if workDescription == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Work description cannot be empty")
	}
	if len(workDescription) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Work description cannot exceed 500 characters")
	}
	if err := validateAmounts(amounts); err != nil {
		return err
	}

	if date.IsZero() {
		date = Today()
	}
	t.Date = NormalizeDate(date)
	t.WorkDescription = workDescription
	t.GoldIn = amounts.GoldIn
	t.GoldOut = amounts.GoldOut
	t.CashIn = amounts.CashIn
	t.LabourCharge = amounts.LabourCharge
	return nil
}

func validateAmounts(a Amounts) error {
	checks := []struct {
		name  string
		value decimal.Decimal
	}{
		{"gold_in", a.GoldIn},
		{"gold_out", a.GoldOut},
		{"cash_in", a.CashIn},
		{"labour_charge", a.LabourCharge},
	}
	for _, c := range checks {
		if c.value.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", c.name+" cannot be negative")
		}
		if !c.value.Equal(c.value.Round(AmountScale)) {
			return shared.NewDomainError("INVALID_AMOUNT", c.name+" cannot have more than 4 decimal places")
		}
		if c.value.GreaterThanOrEqual(MaxAmount) {
			return shared.NewDomainError("INVALID_AMOUNT", c.name+" must be less than 100000000000000")
		}
	}
	return nil
}

// Today returns the current local calendar date
func Today() time.Time {
	return NormalizeDate(time.Now())
}

// NormalizeDate drops the clock part, keeping the calendar day of t's location
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
	}
	return d, nil
}
