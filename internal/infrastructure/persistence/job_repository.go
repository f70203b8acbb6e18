package persistence

import (
	"context"
	"errors"

	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/goldledger/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GormJobRepository
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// FindByID finds a job by its ID
func (r *GormJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*workshop.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, workshop.ErrJobNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds jobs matching the filter, newest first
func (r *GormJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workshop.Job, error) {
	var jobModels []models.JobModel
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.JobModel{}), filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	query = query.Order(orderClause(filter.OrderBy, filter.OrderDir, JobSortFields, "created_at", "DESC"))

	if err := query.Find(&jobModels).Error; err != nil {
		return nil, err
	}

	jobs := make([]workshop.Job, len(jobModels))
	for i, model := range jobModels {
		jobs[i] = *model.ToDomain()
	}
	return jobs, nil
}

// Save creates or updates a job
func (r *GormJobRepository) Save(ctx context.Context, job *workshop.Job) error {
	model := models.JobModelFromDomain(job)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a job
func (r *GormJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.JobModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return workshop.ErrJobNotFound
	}
	return nil
}

// Count counts jobs matching the filter
func (r *GormJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.JobModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts jobs that reference the customer
func (r *GormJobRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.JobModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type statusCountRow struct {
	Status workshop.JobStatus
	Count  int64
}

// CountByStatus returns the number of jobs per status
func (r *GormJobRepository) CountByStatus(ctx context.Context) (map[workshop.JobStatus]int64, error) {
	var rows []statusCountRow
	if err := r.db.WithContext(ctx).
		Model(&models.JobModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[workshop.JobStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *GormJobRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			if status, ok := value.(workshop.JobStatus); ok && status != "" {
				query = query.Where("status = ?", status)
			}
		case "customer_id":
			if id, ok := value.(uuid.UUID); ok && id != uuid.Nil {
				query = query.Where("customer_id = ?", id)
			}
		}
	}
	return query
}
