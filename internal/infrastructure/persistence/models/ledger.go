package models

import (
	"time"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel is the persistence model for the Transaction domain entity.
type TransactionModel struct {
	BaseModel
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerName    string          `gorm:"type:varchar(200);not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	WorkDescription string          `gorm:"type:varchar(500);not null"`
	GoldIn          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	GoldOut         decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CashIn          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LabourCharge    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Remarks         string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TransactionModel) ToDomain() *ledger.Transaction {
	return &ledger.Transaction{
		BaseEntity:      m.BaseModel.ToDomain(),
		CustomerID:      m.CustomerID,
		CustomerName:    m.CustomerName,
		Date:            ledger.NormalizeDate(m.Date),
		WorkDescription: m.WorkDescription,
		GoldIn:          m.GoldIn,
		GoldOut:         m.GoldOut,
		CashIn:          m.CashIn,
		LabourCharge:    m.LabourCharge,
		Remarks:         m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TransactionModel) FromDomain(t *ledger.Transaction) {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.CustomerID = t.CustomerID
	m.CustomerName = t.CustomerName
	m.Date = t.Date
	m.WorkDescription = t.WorkDescription
	m.GoldIn = t.GoldIn
	m.GoldOut = t.GoldOut
	m.CashIn = t.CashIn
	m.LabourCharge = t.LabourCharge
	m.Remarks = t.Remarks
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction entity.
func TransactionModelFromDomain(t *ledger.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomain(t)
	return m
}
