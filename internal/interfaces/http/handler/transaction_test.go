package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/goldledger/backend/internal/application/ledger"
	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type transactionFixture struct {
	engine    *gin.Engine
	customers *MockCustomerRepository
	txs       *MockTransactionRepository
}

func newTransactionFixture() *transactionFixture {
	f := &transactionFixture{
		customers: new(MockCustomerRepository),
		txs:       new(MockTransactionRepository),
	}
	h := NewTransactionHandler(ledgerapp.NewTransactionService(f.txs, f.customers, nil))

	f.engine = newTestEngine()
	f.engine.POST("/transactions", h.Create)
	f.engine.GET("/transactions", h.List)
	f.engine.GET("/transactions/:id", h.GetByID)
	f.engine.PUT("/transactions/:id", h.Update)
	f.engine.DELETE("/transactions/:id", h.Delete)
	return f
}

func TestTransactionHandler_Create(t *testing.T) {
	t.Run("books transaction with customer name snapshot", func(t *testing.T) {
		f := newTransactionFixture()
		customer := newCustomer(t, "Meena")
		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.txs.On("Save", mock.Anything, mock.MatchedBy(func(tx *ledger.Transaction) bool {
			return tx.CustomerName == "Meena" && tx.GoldIn.Equal(decimal.RequireFromString("10.125"))
		})).Return(nil)

		w, resp := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
			"customer_id":      customer.ID.String(),
			"date":             "2026-03-14",
			"work_description": "Necklace repair",
			"gold_in":          "10.125",
			"cash_in":          1500,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataMap(t, resp)
		assert.Equal(t, "Meena", data["customer_name"])
		assert.Equal(t, "2026-03-14", data["date"])
		assert.Equal(t, "10.125", data["gold_in"])
		assert.Equal(t, "0", data["gold_out"])
		assert.Equal(t, "1500", data["cash_in"])
		f.txs.AssertExpectations(t)
	})

	t.Run("omitted date means today", func(t *testing.T) {
		f := newTransactionFixture()
		customer := newCustomer(t, "Meena")
		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.txs.On("Save", mock.Anything, mock.Anything).Return(nil)

		w, resp := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
			"customer_id":      customer.ID.String(),
			"work_description": "Deposit",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, ledger.Today().Format(ledger.DateLayout), dataMap(t, resp)["date"])
	})

	t.Run("unknown customer is 404", func(t *testing.T) {
		f := newTransactionFixture()
		id := uuid.New()
		f.customers.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w, resp := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
			"customer_id":      id.String(),
			"work_description": "Deposit",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
		f.txs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		f := newTransactionFixture()
		customer := newCustomer(t, "Meena")
		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		w, resp := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
			"customer_id":      customer.ID.String(),
			"work_description": "Deposit",
			"gold_out":         "-1",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_AMOUNT", resp.Error.Code)
	})

	t.Run("amounts beyond the stored precision are rejected", func(t *testing.T) {
		for _, amount := range []string{"1.23456", "100000000000000"} {
			f := newTransactionFixture()
			customer := newCustomer(t, "Meena")
			f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

			w, resp := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
				"customer_id":      customer.ID.String(),
				"work_description": "Deposit",
				"gold_in":          amount,
			})

			assert.Equal(t, http.StatusBadRequest, w.Code, amount)
			assert.Equal(t, "INVALID_AMOUNT", resp.Error.Code, amount)
			f.txs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		}
	})

	t.Run("malformed date is a validation error", func(t *testing.T) {
		f := newTransactionFixture()

		w, resp := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
			"customer_id":      uuid.NewString(),
			"work_description": "Deposit",
			"date":             "14/03/2026",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	})

	t.Run("customer id must be a uuid", func(t *testing.T) {
		f := newTransactionFixture()

		w, _ := doJSON(t, f.engine, http.MethodPost, "/transactions", map[string]any{
			"customer_id":      "42",
			"work_description": "Deposit",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionHandler_List(t *testing.T) {
	f := newTransactionFixture()
	customerID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	match := mock.MatchedBy(func(filter shared.Filter) bool {
		got, ok := filter.Filters["date_from"].(time.Time)
		return ok && got.Equal(from) &&
			filter.Page == 1 && filter.PageSize == 20 &&
			filter.Filters["customer_id"] == customerID
	})
	tx, err := ledger.NewTransaction(customerID, "Meena", from, "Deposit", ledger.Amounts{GoldIn: decimal.NewFromInt(1)})
	require.NoError(t, err)
	f.txs.On("FindAll", mock.Anything, match).Return([]ledger.Transaction{*tx}, nil)
	f.txs.On("Count", mock.Anything, match).Return(int64(1), nil)

	w, resp := doJSON(t, f.engine, http.MethodGet, "/transactions?customer_id="+customerID.String()+"&date_from=2026-03-01", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data.([]any), 1)
	assert.Equal(t, int64(1), resp.Meta.Total)
	f.txs.AssertExpectations(t)
}

func TestTransactionHandler_List_BadCustomerFilter(t *testing.T) {
	f := newTransactionFixture()

	w, _ := doJSON(t, f.engine, http.MethodGet, "/transactions?customer_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionHandler_Update(t *testing.T) {
	f := newTransactionFixture()
	original := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	tx, err := ledger.NewTransaction(uuid.New(), "Meena", original, "Deposit", ledger.Amounts{GoldIn: decimal.NewFromInt(5)})
	require.NoError(t, err)
	f.txs.On("FindByID", mock.Anything, tx.ID).Return(tx, nil)
	f.txs.On("Save", mock.Anything, tx).Return(nil)

	w, resp := doJSON(t, f.engine, http.MethodPut, "/transactions/"+tx.ID.String(), map[string]any{
		"work_description": "Deposit corrected",
		"gold_in":          "5.5",
		"remarks":          "weighed again",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	assert.Equal(t, "2026-02-10", data["date"])
	assert.Equal(t, "5.5", data["gold_in"])
	assert.Equal(t, "weighed again", data["remarks"])
}

func TestTransactionHandler_GetAndDelete(t *testing.T) {
	f := newTransactionFixture()
	missing := uuid.New()
	f.txs.On("FindByID", mock.Anything, missing).Return(nil, ledger.ErrTransactionNotFound)
	f.txs.On("Delete", mock.Anything, missing).Return(shared.ErrNotFound)
	existing := uuid.New()
	f.txs.On("Delete", mock.Anything, existing).Return(nil)

	w, notFound := doJSON(t, f.engine, http.MethodGet, "/transactions/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Transaction not found", notFound.Error.Message)

	w, _ = doJSON(t, f.engine, http.MethodDelete, "/transactions/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp := doJSON(t, f.engine, http.MethodDelete, "/transactions/"+existing.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transaction deleted successfully", dataMap(t, resp)["message"])
}
