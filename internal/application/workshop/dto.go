package workshop

import (
	"time"

	"github.com/goldledger/backend/internal/domain/ledger"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/google/uuid"
)

// CreateJobRequest represents a request to open a job
type CreateJobRequest struct {
	CustomerID       uuid.UUID `json:"customer_id" binding:"required"`
	WorkDescription  string    `json:"work_description" binding:"required,min=1,max=500"`
	Status           string    `json:"status"`
	ExpectedDelivery string    `json:"expected_delivery" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateJobRequest changes any subset of a job's fields.
// An empty expected_delivery string clears the date.
type UpdateJobRequest struct {
	WorkDescription  *string `json:"work_description" binding:"omitempty,min=1,max=500"`
	Status           *string `json:"status"`
	ExpectedDelivery *string `json:"expected_delivery"`
}

// UpdateJobStatusRequest represents a request to move a job to another status
type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// JobListFilter represents filter options for the job list
type JobListFilter struct {
	Status     string `form:"status"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// JobResponse represents a job in API responses
type JobResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	WorkDescription  string    `json:"work_description"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"status_label"`
	ExpectedDelivery *string   `json:"expected_delivery,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToJobResponse converts a domain Job to JobResponse
func ToJobResponse(j *workshop.Job) JobResponse {
	resp := JobResponse{
		ID:              j.ID,
		CustomerID:      j.CustomerID,
		CustomerName:    j.CustomerName,
		WorkDescription: j.WorkDescription,
		Status:          string(j.Status),
		StatusLabel:     j.Status.Label(),
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
	if j.ExpectedDelivery != nil {
		s := j.ExpectedDelivery.Format(ledger.DateLayout)
		resp.ExpectedDelivery = &s
	}
	return resp
}
