package types

// JobsResponse is the body of a job listing or submission response. Next
// carries the continuation URL for the following page of a listing, or is
// empty on the final page.
type JobsResponse struct {
	Jobs []Job  `json:"jobs"`
	Next string `json:"next,omitempty"`
}

// Quota describes the job quota of a user. Remaining is nil when the user
// has no quota.
type Quota struct {
	MaxJobsPerMonth *int `json:"max_jobs_per_month,omitempty"`
	Remaining       *int `json:"remaining,omitempty"`
}

// UserInfo is the body of a user info response
type UserInfo struct {
	UserID   string   `json:"user_id"`
	Quota    Quota    `json:"quota"`
	JobNames []string `json:"job_names,omitempty"`
}
