package models

import (
	"time"

	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/google/uuid"
)

// JobModel is the persistence model for the Job domain entity.
type JobModel struct {
	BaseModel
	CustomerID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	CustomerName     string             `gorm:"type:varchar(200);not null"`
	WorkDescription  string             `gorm:"type:varchar(500);not null"`
	Status           workshop.JobStatus `gorm:"type:varchar(20);not null;default:'in_progress';index"`
	ExpectedDelivery *time.Time         `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts the persistence model to a domain Job entity.
func (m *JobModel) ToDomain() *workshop.Job {
	job := &workshop.Job{
		BaseEntity:      m.BaseModel.ToDomain(),
		CustomerID:      m.CustomerID,
		CustomerName:    m.CustomerName,
		WorkDescription: m.WorkDescription,
		Status:          m.Status,
	}
	job.SetExpectedDelivery(m.ExpectedDelivery)
	return job
}

// FromDomain populates the persistence model from a domain Job entity.
func (m *JobModel) FromDomain(j *workshop.Job) {
	m.FromDomainBaseEntity(j.BaseEntity)
	m.CustomerID = j.CustomerID
	m.CustomerName = j.CustomerName
	m.WorkDescription = j.WorkDescription
	m.Status = j.Status
	m.ExpectedDelivery = j.ExpectedDelivery
}

// JobModelFromDomain creates a new persistence model from a domain Job entity.
func JobModelFromDomain(j *workshop.Job) *JobModel {
	m := &JobModel{}
	m.FromDomain(j)
	return m
}
