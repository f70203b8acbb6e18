package handler

import (
	"github.com/gin-gonic/gin"
	ledgerapp "github.com/goldledger/backend/internal/application/ledger"
	partnerapp "github.com/goldledger/backend/internal/application/partner"
)

// CustomerHandler handles customer-related API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
	balanceService  *ledgerapp.BalanceService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService, balanceService *ledgerapp.BalanceService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		balanceService:  balanceService,
	}
}

// CreateCustomerRequest represents a request to create a new customer
// @Description Request body for creating a new customer
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200" example:"Ramesh Soni"`
	Phone string `json:"phone" binding:"max=50" example:"+91 98765 43210"`
	Notes string `json:"notes" binding:"max=2000" example:"Prefers 22k"`
}

// UpdateCustomerRequest represents a request to update a customer.
// Omitted phone or notes are cleared.
// @Description Request body for updating a customer
type UpdateCustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200" example:"Ramesh Soni"`
	Phone string `json:"phone" binding:"max=50" example:"+91 98765 43210"`
	Notes string `json:"notes" binding:"max=2000" example:"Pays monthly"`
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Register a customer that transactions and jobs can be booked against
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Rejects a repeated submit with 409"
// @Param        request body CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), partnerapp.CreateCustomerRequest{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetByID godoc
// @ID           getCustomerById
// @Summary      Get customer by ID
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customerID, ok := h.parseID(c, "id", "customer")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  List customers sorted by name, optionally filtered by a name or phone search
// @Tags         customers
// @Produce      json
// @Param        search query string false "Search in name and phone"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(name)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(asc)
// @Success      200 {object} APIResponse[[]partnerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter partnerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	customers, total, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, customers, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateCustomer
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Param        request body UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} APIResponse[partnerapp.CustomerResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, ok := h.parseID(c, "id", "customer")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), customerID, partnerapp.UpdateCustomerRequest{
		Name:  req.Name,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer
// @Description  Delete a customer that has no transactions and no jobs
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[dto.MessageResponse]
// @Failure      400 {object} ErrorResponse "Invalid ID or customer still has transactions or jobs"
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, ok := h.parseID(c, "id", "customer")
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), customerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Deleted(c, "Customer")
}

// GetBalance godoc
// @ID           getCustomerBalance
// @Summary      Get customer balance
// @Description  Net gold (gold in minus gold out) and money (cash in minus labour charge) over every transaction of the customer.
// @Description  An ID without transactions yields zero balances.
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.BalanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id}/balance [get]
func (h *CustomerHandler) GetBalance(c *gin.Context) {
	customerID, ok := h.parseID(c, "id", "customer")
	if !ok {
		return
	}

	balance, err := h.balanceService.GetCustomerBalance(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}

// GetStatement godoc
// @ID           getCustomerStatement
// @Summary      Get customer statement
// @Description  The customer's transactions oldest first, each with the running balance after it
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID" format(uuid)
// @Success      200 {object} APIResponse[ledgerapp.StatementResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /customers/{id}/statement [get]
func (h *CustomerHandler) GetStatement(c *gin.Context) {
	customerID, ok := h.parseID(c, "id", "customer")
	if !ok {
		return
	}

	statement, err := h.balanceService.GetStatement(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, statement)
}
