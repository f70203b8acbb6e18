package workshop

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    JobStatus
		wantErr bool
	}{
		{input: "in_progress", want: JobStatusInProgress},
		{input: "In Progress", want: JobStatusInProgress},
		{input: "in-progress", want: JobStatusInProgress},
		{input: " COMPLETED ", want: JobStatusCompleted},
		{input: "Delivered", want: JobStatusDelivered},
		{input: "cancelled", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseJobStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobStatus_IsActive(t *testing.T) {
	assert.True(t, JobStatusInProgress.IsActive())
	assert.True(t, JobStatusCompleted.IsActive())
	assert.False(t, JobStatusDelivered.IsActive())
	assert.Equal(t, "In Progress", JobStatusInProgress.Label())
	assert.ElementsMatch(t, []JobStatus{JobStatusInProgress, JobStatusCompleted}, ActiveJobStatuses())
}

func TestNewJob(t *testing.T) {
	t.Run("defaults to in progress", func(t *testing.T) {
		job, err := NewJob(uuid.New(), "Anita", "Necklace clasp")

		require.NoError(t, err)
		assert.Equal(t, JobStatusInProgress, job.Status)
		assert.Equal(t, "Anita", job.CustomerName)
		assert.Nil(t, job.ExpectedDelivery)
	})

	t.Run("fails with empty description", func(t *testing.T) {
		job, err := NewJob(uuid.New(), "Anita", "")

		assert.Error(t, err)
		assert.Nil(t, job)
	})

	t.Run("fails without customer", func(t *testing.T) {
		job, err := NewJob(uuid.Nil, "Anita", "Work")

		assert.Error(t, err)
		assert.Nil(t, job)
	})
}

func TestJob_ChangeStatus(t *testing.T) {
	job, err := NewJob(uuid.New(), "Anita", "Earring repair")
	require.NoError(t, err)

	require.NoError(t, job.ChangeStatus(JobStatusDelivered))
	assert.Equal(t, JobStatusDelivered, job.Status)

	require.NoError(t, job.ChangeStatus(JobStatusCompleted))
	assert.Equal(t, JobStatusCompleted, job.Status)

	assert.Error(t, job.ChangeStatus(JobStatus("lost")))
	assert.Equal(t, JobStatusCompleted, job.Status)
}

func TestJob_SetExpectedDelivery(t *testing.T) {
	job, err := NewJob(uuid.New(), "Anita", "Ring sizing")
	require.NoError(t, err)

	when := time.Date(2025, 5, 20, 15, 30, 0, 0, time.UTC)
	job.SetExpectedDelivery(&when)
	require.NotNil(t, job.ExpectedDelivery)
	assert.Equal(t, 0, job.ExpectedDelivery.Hour())
	assert.Equal(t, 20, job.ExpectedDelivery.Day())

	job.SetExpectedDelivery(nil)
	assert.Nil(t, job.ExpectedDelivery)
}
