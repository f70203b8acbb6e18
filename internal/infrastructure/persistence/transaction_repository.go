package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID finds a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var model models.TransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrTransactionNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds transactions matching the filter, newest date first
func (r *GormTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ledger.Transaction, error) {
	var txModels []models.TransactionModel
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.TransactionModel{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, TransactionSortFields, "date", "DESC"))

	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}
	return toTransactions(txModels), nil
}

// FindByCustomerChronological returns a customer's transactions oldest first
func (r *GormTransactionRepository) FindByCustomerChronological(ctx context.Context, customerID uuid.UUID) ([]ledger.Transaction, error) {
	var txModels []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date ASC, created_at ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	return toTransactions(txModels), nil
}

// Save creates or updates a transaction
func (r *GormTransactionRepository) Save(ctx context.Context, tx *ledger.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a transaction
func (r *GormTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ledger.ErrTransactionNotFound
	}
	return nil
}

// Count counts transactions matching the filter
func (r *GormTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.TransactionModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts transactions that reference the customer
func (r *GormTransactionRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type totalsRow struct {
	GoldIn       decimal.Decimal
	GoldOut      decimal.Decimal
	CashIn       decimal.Decimal
	LabourCharge decimal.Decimal
	Count        int64
}

// SumTotals aggregates the ledger columns in the database
func (r *GormTransactionRepository) SumTotals(ctx context.Context, customerID *uuid.UUID) (ledger.Totals, error) {
	var row totalsRow
	query := r.db.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Select("COALESCE(SUM(gold_in), 0) AS gold_in, " +
			"COALESCE(SUM(gold_out), 0) AS gold_out, " +
			"COALESCE(SUM(cash_in), 0) AS cash_in, " +
			"COALESCE(SUM(labour_charge), 0) AS labour_charge, " +
			"COUNT(*) AS count")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if err := query.Scan(&row).Error; err != nil {
		return ledger.Totals{}, err
	}

	return ledger.Totals{
		GoldIn:       row.GoldIn,
		GoldOut:      row.GoldOut,
		CashIn:       row.CashIn,
		LabourCharge: row.LabourCharge,
		Count:        row.Count,
	}, nil
}

func (r *GormTransactionRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			if id, ok := value.(uuid.UUID); ok && id != uuid.Nil {
				query = query.Where("customer_id = ?", id)
			}
		case "date_from":
			if d, ok := value.(time.Time); ok && !d.IsZero() {
				query = query.Where("date >= ?", ledger.NormalizeDate(d))
			}
		case "date_to":
			if d, ok := value.(time.Time); ok && !d.IsZero() {
				query = query.Where("date <= ?", ledger.NormalizeDate(d))
			}
		}
	}
	return query
}

func toTransactions(txModels []models.TransactionModel) []ledger.Transaction {
	txs := make([]ledger.Transaction, len(txModels))
	for i, model := range txModels {
		txs[i] = *model.ToDomain()
	}
	return txs
}
