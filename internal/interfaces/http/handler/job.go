package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	workshopapp "github.com/goldledger/backend/internal/application/workshop"
	"github.com/google/uuid"
)

// JobHandler handles workshop job API endpoints
type JobHandler struct {
	BaseHandler
	jobService *workshopapp.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *workshopapp.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// CreateJobRequest represents a request to open a job
// @Description Request body for opening a job
type CreateJobRequest struct {
	CustomerID       string `json:"customer_id" binding:"required,uuid" example:"7f1c9a52-0d3b-4c8e-9a51-2f6e4b7d8c90"`
	WorkDescription  string `json:"work_description" binding:"required,min=1,max=500" example:"Resize ring to 14"`
	Status           string `json:"status" example:"in_progress"`
	ExpectedDelivery string `json:"expected_delivery" binding:"omitempty,datetime=2006-01-02" example:"2026-04-01"`
}

// UpdateJobRequest changes any subset of a job's fields.
// An empty expected_delivery clears the date.
// @Description Request body for updating a job
type UpdateJobRequest struct {
	WorkDescription  *string `json:"work_description" binding:"omitempty,min=1,max=500" example:"Resize ring to 15"`
	Status           *string `json:"status" example:"completed"`
	ExpectedDelivery *string `json:"expected_delivery" example:"2026-04-03"`
}

// UpdateJobStatusRequest represents a request to move a job to another status
// @Description Request body for changing job status
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required" example:"delivered"`
}

// Create godoc
// @ID           createJob
// @Summary      Open a job
// @Description  Open a work order for an existing customer. Status defaults to in_progress.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Rejects a repeated submit with 409"
// @Param        request body CreateJobRequest true "Job creation request"
// @Success      201 {object} APIResponse[workshopapp.JobResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Customer not found"
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), workshopapp.CreateJobRequest{
		CustomerID:       customerID,
		WorkDescription:  req.WorkDescription,
		Status:           req.Status,
		ExpectedDelivery: req.ExpectedDelivery,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, job)
}

// GetByID godoc
// @ID           getJobById
// @Summary      Get job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID" format(uuid)
// @Success      200 {object} APIResponse[workshopapp.JobResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// List godoc
// @ID           listJobs
// @Summary      List jobs
// @Description  List jobs newest first
// @Tags         jobs
// @Produce      json
// @Param        status query string false "Job status" Enums(in_progress, completed, delivered)
// @Param        customer_id query string false "Only this customer's jobs" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Param        order_by query string false "Order by field" default(created_at)
// @Param        order_dir query string false "Order direction" Enums(asc, desc) default(desc)
// @Success      200 {object} APIResponse[[]workshopapp.JobResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var filter workshopapp.JobListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize)

	jobs, total, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, jobs, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateJob
// @Summary      Update a job
// @Description  Change any subset of description, status and expected delivery.
// @Description  A status query parameter is honoured when the body carries none.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "Job ID" format(uuid)
// @Param        status query string false "New status" Enums(in_progress, completed, delivered)
// @Param        request body UpdateJobRequest false "Job update request"
// @Success      200 {object} APIResponse[workshopapp.JobResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "id", "job")
	if !ok {
		return
	}

	// An empty body, sized or chunked, decodes as io.EOF and changes nothing
	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BindError(c, err)
		return
	}
	if req.Status == nil {
		req.Status = optionalString(c.Query("status"))
	}

	job, err := h.jobService.Update(c.Request.Context(), id, workshopapp.UpdateJobRequest{
		WorkDescription:  req.WorkDescription,
		Status:           req.Status,
		ExpectedDelivery: req.ExpectedDelivery,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// UpdateStatus godoc
// @ID           updateJobStatus
// @Summary      Change job status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "Job ID" format(uuid)
// @Param        request body UpdateJobStatusRequest true "New status"
// @Success      200 {object} APIResponse[workshopapp.JobResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /jobs/{id}/status [put]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseID(c, "id", "job")
	if !ok {
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	job, err := h.jobService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, job)
}

// Delete godoc
// @ID           deleteJob
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID" format(uuid)
// @Success      200 {object} APIResponse[dto.MessageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "id", "job")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Deleted(c, "Job")
}
