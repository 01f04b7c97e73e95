package types

import (
	"fmt"
	"slices"
)

// Completable is implemented by values that can report whether every job
// they represent has reached a terminal status.
type Completable interface {
	Complete() bool
}

var (
	_ Completable = Job{}
	_ Completable = Batch{}
)

// Batch is an ordered sequence of Job snapshots. Insertion order is
// preserved and duplicates are permitted. The zero value is an empty Batch,
// which is a valid "zero jobs found" result rather than an error.
//
// Every derivation (Slice, Concat, Reversed, FilterJobs) returns a Batch
// backed by a fresh array, so mutating one Batch never affects another.
type Batch struct {
	jobs []Job
}

// NewBatch creates a Batch holding the given jobs, in order
func NewBatch(jobs ...Job) Batch {
	return Batch{jobs: slices.Clone(jobs)}
}

// Len returns the number of jobs in the batch
func (b Batch) Len() int {
	return len(b.jobs)
}

// At returns the job at index i. It panics if i is out of range, matching
// slice indexing.
func (b Batch) At(i int) Job {
	return b.jobs[i]
}

// Jobs returns a copy of the batch's jobs in stored order
func (b Batch) Jobs() []Job {
	return slices.Clone(b.jobs)
}

// Slice returns a new Batch holding the jobs in [i, j)
func (b Batch) Slice(i, j int) Batch {
	return Batch{jobs: slices.Clone(b.jobs[i:j])}
}

// Concat returns a new Batch holding b's jobs followed by other's jobs
func (b Batch) Concat(other Batch) Batch {
	jobs := make([]Job, 0, len(b.jobs)+len(other.jobs))
	jobs = append(jobs, b.jobs...)
	jobs = append(jobs, other.jobs...)
	return Batch{jobs: jobs}
}

// Reversed returns a new Batch with the jobs in reverse order
func (b Batch) Reversed() Batch {
	jobs := slices.Clone(b.jobs)
	slices.Reverse(jobs)
	return Batch{jobs: jobs}
}

// Delete removes the job at index i in place, shifting subsequent jobs.
// It panics if i is out of range.
func (b *Batch) Delete(i int) {
	b.jobs = slices.Delete(b.jobs, i, i+1)
}

// Contains reports whether the batch holds a job structurally equal to job
func (b Batch) Contains(job Job) bool {
	for _, j := range b.jobs {
		if j.Equal(job) {
			return true
		}
	}
	return false
}

// Equal reports whether two batches hold element-wise equal job sequences
func (b Batch) Equal(other Batch) bool {
	if len(b.jobs) != len(other.jobs) {
		return false
	}
	for i, j := range b.jobs {
		if !j.Equal(other.jobs[i]) {
			return false
		}
	}
	return true
}

// Complete reports whether every job in the batch has reached a terminal
// status. An empty batch is complete.
func (b Batch) Complete() bool {
	for _, j := range b.jobs {
		if !j.Complete() {
			return false
		}
	}
	return true
}

// Succeeded reports whether every job in the batch succeeded. Vacuously true
// for an empty batch.
func (b Batch) Succeeded() bool {
	for _, j := range b.jobs {
		if !j.Succeeded() {
			return false
		}
	}
	return true
}

// AnyExpired reports whether any job in the batch has expired
func (b Batch) AnyExpired() bool {
	for _, j := range b.jobs {
		if j.Expired() {
			return true
		}
	}
	return false
}

// TotalCreditCost sums the credit cost of every job in the batch, treating
// an unknown cost as zero.
func (b Batch) TotalCreditCost() float64 {
	var total float64
	for _, j := range b.jobs {
		if j.CreditCost != nil {
			total += *j.CreditCost
		}
	}
	return total
}

// Filter selects which job statuses FilterJobs keeps. A job is kept when
// the flag matching its own status is set. Expired jobs are dropped
// regardless of status unless IncludeExpired is set.
type Filter struct {
	Succeeded      bool
	Pending        bool
	Running        bool
	Failed         bool
	IncludeExpired bool
}

// FilterJobs returns the sub-batch of jobs matching the filter, preserving
// order.
func (b Batch) FilterJobs(f Filter) Batch {
	var jobs []Job
	for _, j := range b.jobs {
		if !f.IncludeExpired && j.Expired() {
			continue
		}

		switch {
		case j.Succeeded() && f.Succeeded,
			j.Pending() && f.Pending,
			j.Running() && f.Running,
			j.Failed() && f.Failed:
			jobs = append(jobs, j)
		}
	}
	return Batch{jobs: jobs}
}

// StatusCounts is a per-status breakdown of a batch. Each job lands in
// exactly one bucket.
type StatusCounts struct {
	Succeeded int
	Failed    int
	Running   int
	Pending   int
}

// CountStatuses classifies every job in the batch into one status bucket
func (b Batch) CountStatuses() StatusCounts {
	var counts StatusCounts
	for _, j := range b.jobs {
		switch {
		case j.Succeeded():
			counts.Succeeded++
		case j.Failed():
			counts.Failed++
		case j.Running():
			counts.Running++
		case j.Pending():
			counts.Pending++
		}
	}
	return counts
}

// String returns a human-readable summary of the batch
func (b Batch) String() string {
	counts := b.CountStatuses()
	return fmt.Sprintf("%d jobs: %d succeeded, %d failed, %d running, %d pending",
		len(b.jobs), counts.Succeeded, counts.Failed, counts.Running, counts.Pending)
}
