// Package client provides the API client for interacting with the HyP3 API
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/asf-tools/hyp3-go/pkg/api/v1/routes"
	"github.com/asf-tools/hyp3-go/pkg/api/v1/submit"
	"github.com/asf-tools/hyp3-go/pkg/types"
)

// Version is the SDK version reported in the User-Agent header
const Version = "0.1.0"

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

const userAgent = "hyp3-go/" + Version

// Client is the interface for the HyP3 API client
type Client interface {
	// Job submission
	SubmitPreparedJobs(ctx context.Context, specs ...types.JobSpec) (types.Batch, error)
	SubmitAutoRIFTJob(ctx context.Context, granule1, granule2, name string) (types.Batch, error)
	SubmitRTCJob(ctx context.Context, granule, name string, opts submit.RTCOptions) (types.Batch, error)
	SubmitInSARJob(ctx context.Context, granule1, granule2, name string, opts submit.InSAROptions) (types.Batch, error)
	SubmitInSARISCEBurstJob(ctx context.Context, granule1, granule2, name string, opts submit.InSARISCEBurstOptions) (types.Batch, error)

	// Job retrieval
	FindJobs(ctx context.Context, params FindJobsParams) (types.Batch, error)
	GetJobByID(ctx context.Context, jobID string) (types.Job, error)

	// Job update
	RenameJob(ctx context.Context, jobID, name string) (types.Job, error)

	// Polling
	RefreshJob(ctx context.Context, job types.Job) (types.Job, error)
	RefreshBatch(ctx context.Context, batch types.Batch) (types.Batch, error)
	WatchJob(ctx context.Context, job types.Job, opts *WatchOptions) (types.Job, error)
	WatchBatch(ctx context.Context, batch types.Batch, opts *WatchOptions) (types.Batch, error)

	// User endpoints
	MyInfo(ctx context.Context) (types.UserInfo, error)
	CheckQuota(ctx context.Context) (*int, error)
}

var _ Client = &APIClient{}

// Options contains configuration options for the API client
type Options struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Token is the bearer token attached to every request
	Token string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options. A token must still be
// provided before the options can be used.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	token   string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = routes.DefaultBaseURL
	}

	// Validate the base URL
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if opts.Token == "" {
		return nil, &types.AuthenticationError{
			Message: "no API token provided; set Token in the client options",
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: baseURL,
		token:   opts.Token,
		timeout: timeout,
	}, nil
}

// createAgent creates a new Fiber Agent for the given method and endpoint.
// The endpoint is resolved against the client's base URL unless it is
// already absolute, as pagination continuation URLs are.
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		fullURL = c.baseURL + endpoint
	}

	// Create a new agent based on the HTTP method
	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	case http.MethodPatch:
		agent = fiber.Patch(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	// Set common headers
	agent.Set(fiber.HeaderContentType, "application/json")
	agent.Set(fiber.HeaderAccept, "application/json")
	agent.Set(fiber.HeaderUserAgent, userAgent)
	agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)

	// Add body if provided
	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	// Execute the request
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	// Map non-success status codes onto the SDK error taxonomy
	if statusCode < 200 || statusCode >= 300 {
		return apiError(statusCode, body)
	}

	// Decode the response body if a target is provided
	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			var deserializationErr *types.DeserializationError
			if errors.As(err, &deserializationErr) {
				return deserializationErr
			}
			return &types.DeserializationError{Message: err.Error()}
		}
	}

	return nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// apiError converts a non-success HTTP response into a typed SDK error
func apiError(statusCode int, body []byte) error {
	detail := serverDetail(body)

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &types.AuthenticationError{Message: detail}
	case statusCode == http.StatusServiceUnavailable:
		return &types.ServiceUnavailableError{Message: detail}
	default:
		return &types.ServerError{StatusCode: statusCode, Message: detail}
	}
}

// serverDetail extracts the server-reported error message from an error
// response body, falling back to the raw body.
func serverDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}
