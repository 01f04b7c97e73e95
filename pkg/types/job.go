package types

import (
	"reflect"
	"time"
)

// File describes one output product of a succeeded job
type File struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

// Job represents one remote processing request and its last known
// server-reported state. A Job is a snapshot: it is never mutated in place,
// only replaced by a fresher snapshot fetched from the API.
type Job struct {
	JobID           string         `json:"job_id"`
	JobType         string         `json:"job_type"`
	RequestTime     time.Time      `json:"request_time"`
	StatusCode      Status         `json:"status_code"`
	UserID          string         `json:"user_id,omitempty"`
	Name            string         `json:"name,omitempty"`
	JobParameters   map[string]any `json:"job_parameters,omitempty"`
	Files           []File         `json:"files,omitempty"`
	Logs            []string       `json:"logs,omitempty"`
	BrowseImages    []string       `json:"browse_images,omitempty"`
	ThumbnailImages []string       `json:"thumbnail_images,omitempty"`
	ExpirationTime  *time.Time     `json:"expiration_time,omitempty"`
	CreditCost      *float64       `json:"credit_cost,omitempty"`
	ProcessingTimes []float64      `json:"processing_times,omitempty"`
	Priority        *int           `json:"priority,omitempty"`
}

// Validate checks that a deserialized job record carries every field the API
// guarantees. Records come only from the server; the client never synthesizes
// job IDs.
func (j Job) Validate() error {
	switch {
	case j.JobID == "":
		return &DeserializationError{Field: "job_id", Message: "missing or empty"}
	case j.JobType == "":
		return &DeserializationError{Field: "job_type", Message: "missing or empty"}
	case j.RequestTime.IsZero():
		return &DeserializationError{Field: "request_time", Message: "missing or zero"}
	case j.StatusCode == "":
		return &DeserializationError{Field: "status_code", Message: "missing or empty"}
	}
	return nil
}

// Succeeded reports whether the job finished successfully
func (j Job) Succeeded() bool {
	return j.StatusCode == StatusSucceeded
}

// Failed reports whether the job failed to complete
func (j Job) Failed() bool {
	return j.StatusCode == StatusFailed
}

// Running reports whether the job is currently being processed. A PENDING
// job is not running.
func (j Job) Running() bool {
	return j.StatusCode == StatusRunning
}

// Pending reports whether the job is waiting to be processed
func (j Job) Pending() bool {
	return j.StatusCode == StatusPending
}

// Complete reports whether the job has reached a terminal status
func (j Job) Complete() bool {
	return j.Succeeded() || j.Failed()
}

// Expired reports whether the job's products have expired. A job with no
// expiration time never expires.
func (j Job) Expired() bool {
	if j.ExpirationTime == nil {
		return false
	}
	return j.ExpirationTime.Before(time.Now())
}

// Equal reports whether two job snapshots are structurally identical
func (j Job) Equal(other Job) bool {
	return reflect.DeepEqual(j, other)
}
