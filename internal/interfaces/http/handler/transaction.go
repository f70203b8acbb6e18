package handler

import (
	"github.com/gin-gonic/gin"
	ledgerapp "github.com/goldledger/backend/internal/application/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles ledger transaction API endpoints
type TransactionHandler struct {
	BaseHandler
	transactionService *ledgerapp.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *ledgerapp.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransactionRequest represents a request to book a transaction.
// Amounts accept JSON numbers or decimal strings; omitted amounts are zero.
// @Description Request body for booking a transaction
type CreateTransactionRequest struct {
	CustomerID      string          `json:"customer_id" binding:"required,uuid" example:"7f1c9a52-0d3b-4c8e-9a51-2f6e4b7d8c90"`
	Date            string          `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2026-03-14"`
	WorkDescription string          `json:"work_description" binding:"required,min=1,max=500" example:"Necklace repair"`
	GoldIn          decimal.Decimal `json:"gold_in" swaggertype:"string" example:"10.500"`
	GoldOut         decimal.Decimal `json:"gold_out" swaggertype:"string" example:"0"`
	CashIn          decimal.Decimal `json:"cash_in" swaggertype:"string" example:"1500.00"`
	LabourCharge    decimal.Decimal `json:"labour_charge" swaggertype:"string" example:"800.00"`
	Remarks         string          `json:"remarks" binding:"max=2000" example:"Clasp replaced"`
}

// UpdateTransactionRequest replaces every editable field of a transaction.
// An omitted date keeps the stored one.
// @Description Request body for updating a transaction
type UpdateTransactionRequest struct {
	Date            string          `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2026-03-15"`
	WorkDescription string          `json:"work_description" binding:"required,min=1,max=500" example:"Necklace repair"`
	GoldIn          decimal.Decimal `json:"gold_in" swaggertype:"string" example:"10.500"`
	GoldOut         decimal.Decimal `json:"gold_out" swaggertype:"string" example:"2.250"`
	CashIn          decimal.Decimal `json:"cash_in" swaggertype:"string" example:"1500.00"`
	LabourCharge    decimal.Decimal `json:"labour_charge" swaggertype:"string" example:"800.00"`
	Remarks         string          `json:"remarks" binding:"max=2000" example:""`
}

// Create godoc
// @ID           createTransaction
// @Summary      Book a transaction
// @Description  Record gold and cash movements for a customer. The customer must exist.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Rejects a repeated submit with 409"
// @Param        request body CreateTransactionRequest true "Transaction creation request"
// @Success      201 {object} APIResponse[ledgerapp.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Customer not found"
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	tx, err := h.transactionService.Create(c.Request.Context(), ledgerapp.CreateTransactionRequest{
		CustomerID:      customerID,
		Date:            req.Date,
		WorkDescription: req.WorkDescription,
		GoldIn:          req.GoldIn,
		GoldOut:         req.GoldOut,
		CashIn:          req.CashIn,
		LabourCharge:    req.LabourCharge,
		Remarks:         req.Remarks,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tx)
}

// GetByID godoc
// @ID           getTransactionById
// @Summary      Get transaction by ID
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id", "transaction")
	if !ok {
		return
	}

	tx, err := h.transactionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tx)
}

// List godoc
// @ID           listTransactions
// @Summary      List transactions
// @Description  List transactions newest date first
// @Tags         transactions
// @Produce      json
// @Param        customer_id query string false "Only this customer's transactions" format(uuid)
// @Param        date_from query string false "Inclusive lower date bound" format(date)
// @Param        date_to query string false "Inclusive upper date bound" format(date)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(date)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]ledgerapp.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	var filter ledgerapp.TransactionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	txs, total, err := h.transactionService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, txs, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateTransaction
// @Summary      Update a transaction
// @Description  Replace every field of a transaction except its customer
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Param        request body UpdateTransactionRequest true "Transaction update request"
// @Success      200 {object} APIResponse[ledgerapp.TransactionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "transaction")
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(), id, ledgerapp.UpdateTransactionRequest{
		Date:            req.Date,
		WorkDescription: req.WorkDescription,
		GoldIn:          req.GoldIn,
		GoldOut:         req.GoldOut,
		CashIn:          req.CashIn,
		LabourCharge:    req.LabourCharge,
		Remarks:         req.Remarks,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tx)
}

// Delete godoc
// @ID           deleteTransaction
// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Param        id path string true "Transaction ID" format(uuid)
// @Success      200 {object} APIResponse[dto.MessageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "transaction")
	if !ok {
		return
	}

	if err := h.transactionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Deleted(c, "Transaction")
}
