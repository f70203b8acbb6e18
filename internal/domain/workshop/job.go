package workshop

import (
	"strings"
	"time"

	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// JobStatus is the progress of a work order
type JobStatus string

const (
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusDelivered  JobStatus = "delivered"
)

// ErrJobNotFound matches shared.ErrNotFound under errors.Is
var ErrJobNotFound = shared.NewDomainError("NOT_FOUND", "Job not found")

// AllJobStatuses lists statuses in workflow order
func AllJobStatuses() []JobStatus {
	return []JobStatus{JobStatusInProgress, JobStatusCompleted, JobStatusDelivered}
}

// ActiveJobStatuses are statuses of jobs not yet handed back to the customer
func ActiveJobStatuses() []JobStatus {
	return []JobStatus{JobStatusInProgress, JobStatusCompleted}
}

// IsValid reports whether s is a known status
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusInProgress, JobStatusCompleted, JobStatusDelivered:
		return true
	}
	return false
}

// IsActive reports whether the job still occupies the workshop
func (s JobStatus) IsActive() bool {
	return s == JobStatusInProgress || s == JobStatusCompleted
}

// Label is the human readable form shown on the bench sheet
func (s JobStatus) Label() string {
	switch s {
	case JobStatusInProgress:
		return "In Progress"
	case JobStatusCompleted:
		return "Completed"
	case JobStatusDelivered:
		return "Delivered"
	}
	return string(s)
}

// ParseJobStatus accepts canonical values as well as labels such as
// "In Progress" in any case, with spaces, hyphens or underscores.
func ParseJobStatus(s string) (JobStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	status := JobStatus(norm)
	if !status.IsValid() {
		return "", shared.NewDomainError("INVALID_STATUS", "Status must be one of: in_progress, completed, delivered")
	}
	return status, nil
}

// Job is a work order on the bench for a customer.
// CustomerName is copied at creation and is not refreshed on rename.
type Job struct {
	shared.BaseEntity
	CustomerID       uuid.UUID
	CustomerName     string
	WorkDescription  string
	Status           JobStatus
	ExpectedDelivery *time.Time
}

// NewJob creates an in-progress job for an existing customer
func NewJob(customerID uuid.UUID, customerName, workDescription string) (*Job, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	workDescription = strings.TrimSpace(workDescription)
	if err := validateWorkDescription(workDescription); err != nil {
		return nil, err
	}

	return &Job{
		BaseEntity:      shared.NewBaseEntity(),
		CustomerID:      customerID,
		CustomerName:    customerName,
		WorkDescription: workDescription,
		Status:          JobStatusInProgress,
	}, nil
}

// SetExpectedDelivery sets or clears the promised delivery date
func (j *Job) SetExpectedDelivery(date *time.Time) {
	if date == nil {
		j.ExpectedDelivery = nil
		return
	}
	y, m, d := date.Date()
	normalized := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	j.ExpectedDelivery = &normalized
}

// UpdateDescription replaces the work description
func (j *Job) UpdateDescription(workDescription string) error {
	workDescription = strings.TrimSpace(workDescription)
	if err := validateWorkDescription(workDescription); err != nil {
		return err
	}
	j.WorkDescription = workDescription
	j.Touch()
	return nil
}

// ChangeStatus moves the job to any valid status.
// Any status may follow any other.
func (j *Job) ChangeStatus(status JobStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be one of: in_progress, completed, delivered")
	}
	j.Status = status
	j.Touch()
	return nil
}

func validateWorkDescription(desc string) error {
	if desc == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Work description cannot be empty")
	}
	if len(desc) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Work description cannot exceed 500 characters")
	}
	return nil
}
