package client

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/asf-tools/hyp3-go/internal/logger"
	"github.com/asf-tools/hyp3-go/pkg/types"
)

// Watch defaults
const (
	// DefaultWatchTimeout is how long a watch waits before giving up
	DefaultWatchTimeout = 3 * time.Hour
	// DefaultWatchInterval is how often a watch polls for updates
	DefaultWatchInterval = 60 * time.Second
)

// WatchOptions configures the polling loop of WatchJob and WatchBatch
type WatchOptions struct {
	// Timeout is how long to wait for completion before giving up
	Timeout time.Duration
	// Interval is how often to poll for updates
	Interval time.Duration
}

// DefaultWatchOptions returns the default watch options
func DefaultWatchOptions() *WatchOptions {
	return &WatchOptions{
		Timeout:  DefaultWatchTimeout,
		Interval: DefaultWatchInterval,
	}
}

// RefreshJob fetches the current snapshot of a job from the API
func (c *APIClient) RefreshJob(ctx context.Context, job types.Job) (types.Job, error) {
	return c.GetJobByID(ctx, job.JobID)
}

// RefreshBatch fetches the current snapshot of every job in the batch,
// preserving order.
func (c *APIClient) RefreshBatch(ctx context.Context, batch types.Batch) (types.Batch, error) {
	jobs := make([]types.Job, 0, batch.Len())
	for _, job := range batch.Jobs() {
		refreshed, err := c.RefreshJob(ctx, job)
		if err != nil {
			return types.Batch{}, err
		}
		jobs = append(jobs, refreshed)
	}
	return types.NewBatch(jobs...), nil
}

// WatchJob polls a job until it reaches a terminal status and returns the
// final snapshot. Refresh failures propagate immediately; they are never
// retried internally.
func (c *APIClient) WatchJob(ctx context.Context, job types.Job, opts *WatchOptions) (types.Job, error) {
	return watch(ctx, opts, func(ctx context.Context) (types.Job, error) {
		return c.RefreshJob(ctx, job)
	})
}

// WatchBatch polls every job in a batch until all have reached a terminal
// status and returns the final snapshots.
func (c *APIClient) WatchBatch(ctx context.Context, batch types.Batch, opts *WatchOptions) (types.Batch, error) {
	return watch(ctx, opts, func(ctx context.Context) (types.Batch, error) {
		refreshed, err := c.RefreshBatch(ctx, batch)
		if err != nil {
			return types.Batch{}, err
		}
		logger.Debugf("Watching batch: %s", refreshed)
		return refreshed, nil
	})
}

// watch is the shared polling loop behind WatchJob and WatchBatch. Each
// iteration refreshes the target, returns it once complete, and otherwise
// sleeps for the poll interval.
func watch[T types.Completable](ctx context.Context, opts *WatchOptions, refresh func(context.Context) (T, error)) (T, error) {
	var zero T

	if opts == nil {
		opts = DefaultWatchOptions()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultWatchTimeout
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	iterations := int(math.Ceil(timeout.Seconds() / interval.Seconds()))
	for i := 0; i < iterations; i++ {
		target, err := refresh(ctx)
		if err != nil {
			return zero, err
		}
		if target.Complete() {
			return target, nil
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(interval):
		}
	}

	return zero, fmt.Errorf("timeout occurred while waiting for jobs to complete after %s", timeout)
}
