package types

// JobSpec is the wire-format specification for one job submission, as
// produced by the submission builders.
type JobSpec struct {
	JobType       string         `json:"job_type"`
	JobParameters map[string]any `json:"job_parameters"`
	Name          string         `json:"name,omitempty"`
}

// SubmitJobsRequest is the body of a job submission request. The API
// returns one job record per spec, in the same order.
type SubmitJobsRequest struct {
	Jobs []JobSpec `json:"jobs"`
}

// RenameJobRequest is the body of a job rename request
type RenameJobRequest struct {
	Name string `json:"name"`
}
