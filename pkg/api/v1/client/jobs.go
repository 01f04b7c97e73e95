package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/asf-tools/hyp3-go/internal/logger"
	"github.com/asf-tools/hyp3-go/pkg/api/v1/routes"
	"github.com/asf-tools/hyp3-go/pkg/api/v1/submit"
	"github.com/asf-tools/hyp3-go/pkg/types"
)

// DefaultMaxPages caps how many listing pages FindJobs will walk before
// giving up on a server that never stops returning continuation cursors.
const DefaultMaxPages = 1000

// FindJobsParams are the search criteria for FindJobs. Zero-valued fields
// are omitted from the query.
type FindJobsParams struct {
	// Start restricts the listing to jobs submitted after the given time
	Start *time.Time
	// End restricts the listing to jobs submitted before the given time
	End *time.Time
	// Status restricts the listing to jobs with this status
	Status types.Status
	// Name restricts the listing to jobs with this name
	Name string
	// JobType restricts the listing to jobs of this type
	JobType string
	// UserID restricts the listing to jobs submitted by this user; the
	// server defaults to the current user
	UserID string
}

// queryParams creates url.Values from the search criteria. Times are
// normalized to UTC with second precision.
func (p FindJobsParams) queryParams() url.Values {
	q := url.Values{}

	if p.Start != nil {
		q.Set("start", p.Start.UTC().Format(time.RFC3339))
	}
	if p.End != nil {
		q.Set("end", p.End.UTC().Format(time.RFC3339))
	}
	if p.Status != "" {
		q.Set("status_code", string(p.Status))
	}
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	if p.JobType != "" {
		q.Set("job_type", p.JobType)
	}
	if p.UserID != "" {
		q.Set("user_id", p.UserID)
	}

	return q
}

// FindJobs retrieves a Batch of jobs matching the provided search criteria,
// transparently walking every listing page. A search with no matches
// returns an empty Batch, not an error.
func (c *APIClient) FindJobs(ctx context.Context, params FindJobsParams) (types.Batch, error) {
	endpoint := routes.JobsURL(params.queryParams())

	var jobs []types.Job
	seen := make(map[string]struct{})
	for page := 0; ; page++ {
		if page >= DefaultMaxPages {
			return types.Batch{}, fmt.Errorf("job listing exceeded %d pages", DefaultMaxPages)
		}

		var response types.JobsResponse
		if err := c.executeRequest(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
			return types.Batch{}, err
		}
		for _, job := range response.Jobs {
			if err := job.Validate(); err != nil {
				return types.Batch{}, err
			}
			jobs = append(jobs, job)
		}

		if response.Next == "" {
			break
		}
		if _, ok := seen[response.Next]; ok {
			return types.Batch{}, fmt.Errorf("job listing repeated pagination cursor %q", response.Next)
		}
		seen[response.Next] = struct{}{}
		endpoint = response.Next
	}

	if len(jobs) == 0 {
		logger.Warn("No jobs matched the search criteria")
	}

	return types.NewBatch(jobs...), nil
}

// GetJobByID retrieves a single job by its ID
func (c *APIClient) GetJobByID(ctx context.Context, jobID string) (types.Job, error) {
	var job types.Job
	if err := c.executeRequest(ctx, http.MethodGet, routes.JobURL(jobID), nil, &job); err != nil {
		return types.Job{}, err
	}
	if err := job.Validate(); err != nil {
		return types.Job{}, err
	}
	return job, nil
}

// SubmitPreparedJobs submits one or more prepared job specs in a single
// request and returns a Batch with one job per spec, in submission order.
func (c *APIClient) SubmitPreparedJobs(ctx context.Context, specs ...types.JobSpec) (types.Batch, error) {
	if len(specs) == 0 {
		return types.Batch{}, &types.ValidationError{
			Param:   "jobs",
			Message: "at least one job spec is required",
		}
	}

	request := types.SubmitJobsRequest{Jobs: specs}
	var response types.JobsResponse
	if err := c.executeRequest(ctx, http.MethodPost, routes.JobsURL(nil), request, &response); err != nil {
		return types.Batch{}, err
	}
	for _, job := range response.Jobs {
		if err := job.Validate(); err != nil {
			return types.Batch{}, err
		}
	}

	return types.NewBatch(response.Jobs...), nil
}

// SubmitAutoRIFTJob submits an autoRIFT job over a pair of granules
func (c *APIClient) SubmitAutoRIFTJob(ctx context.Context, granule1, granule2, name string) (types.Batch, error) {
	spec, err := submit.AutoRIFTJob(granule1, granule2, name)
	if err != nil {
		return types.Batch{}, err
	}
	return c.SubmitPreparedJobs(ctx, spec)
}

// SubmitRTCJob submits an RTC job over a single granule
func (c *APIClient) SubmitRTCJob(ctx context.Context, granule, name string, opts submit.RTCOptions) (types.Batch, error) {
	spec, err := submit.RTCJob(granule, name, opts)
	if err != nil {
		return types.Batch{}, err
	}
	return c.SubmitPreparedJobs(ctx, spec)
}

// SubmitInSARJob submits an InSAR job over a pair of granules
func (c *APIClient) SubmitInSARJob(ctx context.Context, granule1, granule2, name string, opts submit.InSAROptions) (types.Batch, error) {
	spec, err := submit.InSARJob(granule1, granule2, name, opts)
	if err != nil {
		return types.Batch{}, err
	}
	return c.SubmitPreparedJobs(ctx, spec)
}

// SubmitInSARISCEBurstJob submits an InSAR ISCE burst job over a pair of
// burst granules
func (c *APIClient) SubmitInSARISCEBurstJob(ctx context.Context, granule1, granule2, name string, opts submit.InSARISCEBurstOptions) (types.Batch, error) {
	spec, err := submit.InSARISCEBurstJob(granule1, granule2, name, opts)
	if err != nil {
		return types.Batch{}, err
	}
	return c.SubmitPreparedJobs(ctx, spec)
}

// RenameJob updates the user-assigned label of a job and returns the
// refreshed snapshot
func (c *APIClient) RenameJob(ctx context.Context, jobID, name string) (types.Job, error) {
	request := types.RenameJobRequest{Name: name}
	var job types.Job
	if err := c.executeRequest(ctx, http.MethodPatch, routes.JobURL(jobID), request, &job); err != nil {
		return types.Job{}, err
	}
	if err := job.Validate(); err != nil {
		return types.Job{}, err
	}
	return job, nil
}

// MyInfo retrieves the current user's information
func (c *APIClient) MyInfo(ctx context.Context) (types.UserInfo, error) {
	var info types.UserInfo
	if err := c.executeRequest(ctx, http.MethodGet, routes.UserURL(), nil, &info); err != nil {
		return types.UserInfo{}, err
	}
	return info, nil
}

// CheckQuota returns the number of jobs left in the current user's quota,
// or nil if the user has no quota
func (c *APIClient) CheckQuota(ctx context.Context) (*int, error) {
	info, err := c.MyInfo(ctx)
	if err != nil {
		return nil, err
	}
	return info.Quota.Remaining, nil
}
