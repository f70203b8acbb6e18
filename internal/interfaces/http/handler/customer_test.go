package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	ledgerapp "github.com/goldledger/backend/internal/application/ledger"
	partnerapp "github.com/goldledger/backend/internal/application/partner"
	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerFixture struct {
	engine    *gin.Engine
	customers *MockCustomerRepository
	txs       *MockTransactionRepository
	jobs      *MockJobRepository
}

func newCustomerFixture() *customerFixture {
	f := &customerFixture{
		customers: new(MockCustomerRepository),
		txs:       new(MockTransactionRepository),
		jobs:      new(MockJobRepository),
	}
	h := NewCustomerHandler(
		partnerapp.NewCustomerService(f.customers, f.txs, f.jobs, nil),
		ledgerapp.NewBalanceService(f.txs, f.customers),
	)

	f.engine = newTestEngine()
	f.engine.POST("/customers", h.Create)
	f.engine.GET("/customers", h.List)
	f.engine.GET("/customers/:id", h.GetByID)
	f.engine.PUT("/customers/:id", h.Update)
	f.engine.DELETE("/customers/:id", h.Delete)
	f.engine.GET("/customers/:id/balance", h.GetBalance)
	f.engine.GET("/customers/:id/statement", h.GetStatement)
	return f
}

func newCustomer(t *testing.T, name string) *partner.Customer {
	t.Helper()
	c, err := partner.NewCustomer(name)
	require.NoError(t, err)
	return c
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("creates customer", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("Save", mock.Anything, mock.MatchedBy(func(c *partner.Customer) bool {
			return c.Name == "Ramesh Soni" && c.Phone == "+91 98765 43210"
		})).Return(nil)

		w, resp := doJSON(t, f.engine, http.MethodPost, "/customers", CreateCustomerRequest{
			Name:  "  Ramesh Soni ",
			Phone: "+91 98765 43210",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		data := dataMap(t, resp)
		assert.Equal(t, "Ramesh Soni", data["name"])
		assert.NotEmpty(t, data["id"])
		f.customers.AssertExpectations(t)
	})

	t.Run("missing name is a validation error", func(t *testing.T) {
		f := newCustomerFixture()

		w, resp := doJSON(t, f.engine, http.MethodPost, "/customers", `{"phone": "123"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "name", resp.Error.Details[0].Field)
		f.customers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("blank name is rejected by the domain", func(t *testing.T) {
		f := newCustomerFixture()

		w, resp := doJSON(t, f.engine, http.MethodPost, "/customers", CreateCustomerRequest{Name: "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_NAME", resp.Error.Code)
	})

	t.Run("bad phone is rejected", func(t *testing.T) {
		f := newCustomerFixture()

		w, resp := doJSON(t, f.engine, http.MethodPost, "/customers", CreateCustomerRequest{Name: "Asha", Phone: "call me"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_PHONE", resp.Error.Code)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		f := newCustomerFixture()
		f.customers.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		w, resp := doJSON(t, f.engine, http.MethodPost, "/customers", CreateCustomerRequest{Name: "Asha"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
		assert.NotContains(t, w.Body.String(), "disk full")
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	f := newCustomerFixture()
	customer := newCustomer(t, "Meena")
	missing := uuid.New()
	f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	f.customers.On("FindByID", mock.Anything, missing).Return(nil, partner.ErrCustomerNotFound)

	w, resp := doJSON(t, f.engine, http.MethodGet, "/customers/"+customer.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Meena", dataMap(t, resp)["name"])

	w, resp = doJSON(t, f.engine, http.MethodGet, "/customers/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Customer not found", resp.Error.Message)

	w, resp = doJSON(t, f.engine, http.MethodGet, "/customers/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid customer ID format", resp.Error.Message)
}

func TestCustomerHandler_List(t *testing.T) {
	f := newCustomerFixture()
	expected := shared.Filter{Page: 2, PageSize: 5, OrderBy: "name", OrderDir: "asc", Search: "so"}
	f.customers.On("FindAll", mock.Anything, expected).Return([]partner.Customer{
		*newCustomer(t, "Anil Soni"),
		*newCustomer(t, "Ramesh Soni"),
	}, nil)
	f.customers.On("Count", mock.Anything, expected).Return(int64(7), nil)

	w, resp := doJSON(t, f.engine, http.MethodGet, "/customers?search=so&page=2&page_size=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	items := resp.Data.([]any)
	assert.Len(t, items, 2)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(7), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 5, resp.Meta.PageSize)
	f.customers.AssertExpectations(t)
}

func TestCustomerHandler_List_RejectsBadPageSize(t *testing.T) {
	f := newCustomerFixture()

	w, _ := doJSON(t, f.engine, http.MethodGet, "/customers?page_size=1000", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Update(t *testing.T) {
	f := newCustomerFixture()
	customer := newCustomer(t, "Meena")
	_ = customer.SetContact("12345", "old note")
	f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	f.customers.On("Save", mock.Anything, customer).Return(nil)

	w, resp := doJSON(t, f.engine, http.MethodPut, "/customers/"+customer.ID.String(), UpdateCustomerRequest{Name: "Meena Devi"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	assert.Equal(t, "Meena Devi", data["name"])
	assert.Nil(t, data["phone"])
	assert.Nil(t, data["notes"])
}

func TestCustomerHandler_Delete(t *testing.T) {
	t.Run("deletes customer without dependents", func(t *testing.T) {
		f := newCustomerFixture()
		customer := newCustomer(t, "Meena")
		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.txs.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(0), nil)
		f.jobs.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(0), nil)
		f.customers.On("Delete", mock.Anything, customer.ID).Return(nil)

		w, resp := doJSON(t, f.engine, http.MethodDelete, "/customers/"+customer.ID.String(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Customer deleted successfully", dataMap(t, resp)["message"])
		f.customers.AssertExpectations(t)
	})

	t.Run("blocked by transactions", func(t *testing.T) {
		f := newCustomerFixture()
		customer := newCustomer(t, "Meena")
		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.txs.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(3), nil)

		w, resp := doJSON(t, f.engine, http.MethodDelete, "/customers/"+customer.ID.String(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeHasDependents, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "3 transaction(s)")
		f.customers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		f.jobs.AssertNotCalled(t, "CountByCustomer", mock.Anything, mock.Anything)
	})

	t.Run("blocked by jobs", func(t *testing.T) {
		f := newCustomerFixture()
		customer := newCustomer(t, "Meena")
		f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		f.txs.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(0), nil)
		f.jobs.On("CountByCustomer", mock.Anything, customer.ID).Return(int64(1), nil)

		w, resp := doJSON(t, f.engine, http.MethodDelete, "/customers/"+customer.ID.String(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, resp.Error.Message, "1 job(s)")
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newCustomerFixture()
		id := uuid.New()
		f.customers.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w, _ := doJSON(t, f.engine, http.MethodDelete, "/customers/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCustomerHandler_GetBalance(t *testing.T) {
	f := newCustomerFixture()
	id := uuid.New()
	f.txs.On("SumTotals", mock.Anything, &id).Return(ledger.Totals{
		GoldIn:       decimal.RequireFromString("10.5"),
		GoldOut:      decimal.RequireFromString("2.25"),
		CashIn:       decimal.RequireFromString("1500"),
		LabourCharge: decimal.RequireFromString("800"),
		Count:        2,
	}, nil)

	w, resp := doJSON(t, f.engine, http.MethodGet, "/customers/"+id.String()+"/balance", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	assert.Equal(t, "8.25", data["gold_balance"])
	assert.Equal(t, "2300", data["money_balance"])
	assert.Equal(t, decimal.NewFromInt(1500).Add(decimal.NewFromInt(800)).String(), data["money_balance"])
	assert.Equal(t, float64(2), data["transaction_count"])
}

func TestCustomerHandler_GetStatement(t *testing.T) {
	f := newCustomerFixture()
	customer := newCustomer(t, "Meena")
	first, err := ledger.NewTransaction(customer.ID, customer.Name, ledger.Today(), "Deposit", ledger.Amounts{
		GoldIn: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	second, err := ledger.NewTransaction(customer.ID, customer.Name, ledger.Today(), "Ring", ledger.Amounts{
		GoldOut:      decimal.NewFromInt(4),
		LabourCharge: decimal.NewFromInt(300),
	})
	require.NoError(t, err)

	f.customers.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
	f.txs.On("FindByCustomerChronological", mock.Anything, customer.ID).Return([]ledger.Transaction{*first, *second}, nil)

	w, resp := doJSON(t, f.engine, http.MethodGet, "/customers/"+customer.ID.String()+"/statement", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, resp)
	lines := data["lines"].([]any)
	require.Len(t, lines, 2)
	assert.Equal(t, "10", lines[0].(map[string]any)["running_gold_balance"])
	assert.Equal(t, "6", data["closing_gold_balance"])
	assert.Equal(t, "300", data["closing_money_balance"])
	assert.Equal(t, decimal.Zero.Add(decimal.NewFromInt(300)).String(), data["closing_money_balance"])
}
