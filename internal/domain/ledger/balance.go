package ledger

import "github.com/shopspring/decimal"

// Rounding applied to reported balances
const (
	GoldPrecision  int32 = 3
	MoneyPrecision int32 = 2
)

// Totals are raw sums of the ledger columns over a set of transactions
type Totals struct {
	GoldIn       decimal.Decimal
	GoldOut      decimal.Decimal
	CashIn       decimal.Decimal
	LabourCharge decimal.Decimal
	Count        int64
}

// Add accumulates one transaction
func (t *Totals) Add(tx Transaction) {
	t.GoldIn = t.GoldIn.Add(tx.GoldIn)
	t.GoldOut = t.GoldOut.Add(tx.GoldOut)
	t.CashIn = t.CashIn.Add(tx.CashIn)
	t.LabourCharge = t.LabourCharge.Add(tx.LabourCharge)
	t.Count++
}

// Balance applies the balance formula and rounding
func (t Totals) Balance() Balance {
	return Balance{
		Gold:  t.GoldIn.Sub(t.GoldOut).Round(GoldPrecision),
		Money: t.CashIn.Add(t.LabourCharge).Round(MoneyPrecision),
	}
}

// Summarize totals a slice of transactions
func Summarize(txs []Transaction) Totals {
	var t Totals
	for i := range txs {
		t.Add(txs[i])
	}
	return t
}

// Balance is the rounded net position.
// Gold is grams held for the customer, Money is cash plus labour collected.
type Balance struct {
	Gold  decimal.Decimal
	Money decimal.Decimal
}

// StatementLine is a transaction with the running balance after it
type StatementLine struct {
	Transaction Transaction
	Running     Balance
}

// BuildStatement computes running balances over transactions given in
// chronological order and returns the lines with the closing balance.
func BuildStatement(txs []Transaction) ([]StatementLine, Balance) {
	lines := make([]StatementLine, 0, len(txs))
	var totals Totals
	for i := range txs {
		totals.Add(txs[i])
		lines = append(lines, StatementLine{
			Transaction: txs[i],
			Running:     totals.Balance(),
		})
	}
	return lines, totals.Balance()
}
