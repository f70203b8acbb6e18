package workshop

import (
	"context"
	"testing"

	"github.com/goldledger/backend/internal/domain/partner"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/domain/workshop"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockJobRepository is a mock implementation of JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uuid.UUID) (*workshop.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Job), args.Error(1)
}

func (m *MockJobRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workshop.Job, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workshop.Job), args.Error(1)
}

func (m *MockJobRepository) Save(ctx context.Context, job *workshop.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockJobRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) CountByStatus(ctx context.Context) (map[workshop.JobStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[workshop.JobStatus]int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestJobService_Create(t *testing.T) {
	t.Run("creates in-progress job", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewJobService(jobRepo, customerRepo)
		ctx := context.Background()
		customer, _ := partner.NewCustomer("Anita")

		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		jobRepo.On("Save", ctx, mock.AnythingOfType("*workshop.Job")).Return(nil)

		resp, err := service.Create(ctx, CreateJobRequest{
			CustomerID:       customer.ID,
			WorkDescription:  "Necklace repair",
			ExpectedDelivery: "2025-01-31",
		})

		require.NoError(t, err)
		assert.Equal(t, "in_progress", resp.Status)
		assert.Equal(t, "In Progress", resp.StatusLabel)
		assert.Equal(t, "Anita", resp.CustomerName)
		require.NotNil(t, resp.ExpectedDelivery)
		assert.Equal(t, "2025-01-31", *resp.ExpectedDelivery)
	})

	t.Run("accepts display label status", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewJobService(jobRepo, customerRepo)
		ctx := context.Background()
		customer, _ := partner.NewCustomer("Anita")

		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		jobRepo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := service.Create(ctx, CreateJobRequest{CustomerID: customer.ID, WorkDescription: "x", Status: "Completed"})

		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("unknown customer is not found", func(t *testing.T) {
		jobRepo := new(MockJobRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewJobService(jobRepo, customerRepo)
		ctx := context.Background()
		id := uuid.New()

		customerRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateJobRequest{CustomerID: id, WorkDescription: "x"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		jobRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestJobService_List_FiltersByStatus(t *testing.T) {
	jobRepo := new(MockJobRepository)
	service := NewJobService(jobRepo, new(MockCustomerRepository))
	ctx := context.Background()

	expected := shared.Filter{
		Page:     1,
		PageSize: 20,
		Filters:  map[string]interface{}{"status": workshop.JobStatusDelivered},
	}
	jobRepo.On("FindAll", ctx, expected).Return([]workshop.Job{}, nil)
	jobRepo.On("Count", ctx, expected).Return(int64(0), nil)

	_, _, err := service.List(ctx, JobListFilter{Status: "Delivered"})

	require.NoError(t, err)
	jobRepo.AssertExpectations(t)
}

func TestJobService_List_InvalidStatus(t *testing.T) {
	service := NewJobService(new(MockJobRepository), new(MockCustomerRepository))

	_, _, err := service.List(context.Background(), JobListFilter{Status: "lost"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATUS", domainErr.Code)
}

func TestJobService_UpdateStatus(t *testing.T) {
	jobRepo := new(MockJobRepository)
	service := NewJobService(jobRepo, new(MockCustomerRepository))
	ctx := context.Background()
	job, err := workshop.NewJob(uuid.New(), "Anita", "Ring")
	require.NoError(t, err)

	jobRepo.On("FindByID", ctx, job.ID).Return(job, nil)
	jobRepo.On("Save", ctx, job).Return(nil)

	resp, err := service.UpdateStatus(ctx, job.ID, "delivered")

	require.NoError(t, err)
	assert.Equal(t, "delivered", resp.Status)
}

func TestJobService_Update_ClearsExpectedDelivery(t *testing.T) {
	jobRepo := new(MockJobRepository)
	service := NewJobService(jobRepo, new(MockCustomerRepository))
	ctx := context.Background()
	job, err := workshop.NewJob(uuid.New(), "Anita", "Ring")
	require.NoError(t, err)

	set := "2025-02-01"
	jobRepo.On("FindByID", ctx, job.ID).Return(job, nil)
	jobRepo.On("Save", ctx, job).Return(nil)

	resp, err := service.Update(ctx, job.ID, UpdateJobRequest{ExpectedDelivery: &set})
	require.NoError(t, err)
	require.NotNil(t, resp.ExpectedDelivery)

	empty := ""
	resp, err = service.Update(ctx, job.ID, UpdateJobRequest{ExpectedDelivery: &empty})
	require.NoError(t, err)
	assert.Nil(t, resp.ExpectedDelivery)
}

func TestJobService_Update_NotFound(t *testing.T) {
	jobRepo := new(MockJobRepository)
	service := NewJobService(jobRepo, new(MockCustomerRepository))
	ctx := context.Background()
	id := uuid.New()

	jobRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

	_, err := service.UpdateStatus(ctx, id, "completed")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
