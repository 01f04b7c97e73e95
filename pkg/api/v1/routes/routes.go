// Package routes defines the API endpoints and URL structure
package routes

import (
	"fmt"
	"net/url"
)

// API base URLs. These are defaults only; the client accepts any deployment
// URL through its options.
const (
	// DefaultBaseURL is the production API deployment
	DefaultBaseURL = "https://hyp3-api.asf.alaska.edu"
	// TestBaseURL is the test API deployment
	TestBaseURL = "https://hyp3-test-api.asf.alaska.edu"
)

// Endpoint paths
const (
	// JobsPath is the job listing and submission endpoint
	JobsPath = "/jobs"
	// UserPath is the current-user info endpoint
	UserPath = "/user"
)

// JobsURL returns the URL for listing or submitting jobs
func JobsURL(queryParams url.Values) string {
	if len(queryParams) > 0 {
		return fmt.Sprintf("%s?%s", JobsPath, queryParams.Encode())
	}
	return JobsPath
}

// JobURL returns the URL for a single job by ID
func JobURL(id string) string {
	return fmt.Sprintf("%s/%s", JobsPath, url.PathEscape(id))
}

// UserURL returns the URL for the current user's info
func UserURL() string {
	return UserPath
}
