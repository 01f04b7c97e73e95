package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJob(status Status) Job {
	return Job{
		JobID:       "d1c05104-b455-4f35-a95a-84155d63f855",
		JobType:     "RTC_GAMMA",
		RequestTime: time.Date(2020, 9, 22, 23, 55, 10, 0, time.UTC),
		StatusCode:  status,
		Name:        "test_job",
		JobParameters: map[string]any{
			"granules": []any{"S1A_IW_SLC__1SDH_20180511T204719_20180511T204746_021862_025C12_6F77"},
		},
	}
}

func TestJobStatusPredicates(t *testing.T) {
	tests := []struct {
		status    Status
		succeeded bool
		failed    bool
		running   bool
		pending   bool
		complete  bool
	}{
		{status: StatusPending, pending: true},
		{status: StatusRunning, running: true},
		{status: StatusSucceeded, succeeded: true, complete: true},
		{status: StatusFailed, failed: true, complete: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			job := testJob(tt.status)
			assert.Equal(t, tt.succeeded, job.Succeeded())
			assert.Equal(t, tt.failed, job.Failed())
			assert.Equal(t, tt.running, job.Running())
			assert.Equal(t, tt.pending, job.Pending())
			assert.Equal(t, tt.complete, job.Complete())

			// Complete is exactly "succeeded or failed", and exactly one
			// predicate holds at a time
			assert.Equal(t, job.Succeeded() || job.Failed(), job.Complete())
			trueCount := 0
			for _, v := range []bool{job.Succeeded(), job.Failed(), job.Running(), job.Pending()} {
				if v {
					trueCount++
				}
			}
			assert.Equal(t, 1, trueCount)
		})
	}
}

func TestJobExpired(t *testing.T) {
	job := testJob(StatusSucceeded)
	assert.False(t, job.Expired(), "a job without an expiration time never expires")

	future := time.Now().Add(7 * 24 * time.Hour)
	job.ExpirationTime = &future
	assert.False(t, job.Expired())

	past := time.Now().Add(-7 * 24 * time.Hour)
	job.ExpirationTime = &past
	assert.True(t, job.Expired())
}

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(*Job)
		wantErrField string
	}{
		{
			name:   "valid record",
			mutate: func(*Job) {},
		},
		{
			name:         "missing job id",
			mutate:       func(j *Job) { j.JobID = "" },
			wantErrField: "job_id",
		},
		{
			name:         "missing job type",
			mutate:       func(j *Job) { j.JobType = "" },
			wantErrField: "job_type",
		},
		{
			name:         "missing request time",
			mutate:       func(j *Job) { j.RequestTime = time.Time{} },
			wantErrField: "request_time",
		},
		{
			name:         "missing status code",
			mutate:       func(j *Job) { j.StatusCode = "" },
			wantErrField: "status_code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := testJob(StatusRunning)
			tt.mutate(&job)

			err := job.Validate()
			if tt.wantErrField == "" {
				assert.NoError(t, err)
				return
			}

			var deserializationErr *DeserializationError
			require.True(t, errors.As(err, &deserializationErr))
			assert.Equal(t, tt.wantErrField, deserializationErr.Field)
		})
	}
}

func TestJobRoundTrip(t *testing.T) {
	record := `{
		"job_id": "281b2087-9e7d-4d17-a9b3-aebeb2ad23c6",
		"job_type": "INSAR_GAMMA",
		"request_time": "2020-09-22T23:55:10Z",
		"status_code": "SUCCEEDED",
		"name": "test_success",
		"user_id": "asf_hyp3",
		"job_parameters": {"granules": ["g1", "g2"]},
		"files": [{"filename": "product.nc", "size": 5949932, "url": "https://example.com/product.nc"}],
		"browse_images": ["https://example.com/browse.png"],
		"expiration_time": "2020-10-08T00:00:00Z",
		"credit_cost": 1.5,
		"processing_times": [123.4, 5.6],
		"priority": 10
	}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(record), &job))
	require.NoError(t, job.Validate())

	assert.Equal(t, "281b2087-9e7d-4d17-a9b3-aebeb2ad23c6", job.JobID)
	assert.True(t, job.Succeeded())
	assert.Equal(t, "product.nc", job.Files[0].Filename)
	require.NotNil(t, job.CreditCost)
	assert.Equal(t, 1.5, *job.CreditCost)
	require.NotNil(t, job.Priority)
	assert.Equal(t, 10, *job.Priority)

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, job.Equal(decoded))
}

func TestJobEqual(t *testing.T) {
	a := testJob(StatusSucceeded)
	b := testJob(StatusSucceeded)
	assert.True(t, a.Equal(b))

	b.StatusCode = StatusFailed
	assert.False(t, a.Equal(b))
}
