// Package client provides unit tests for the HyP3 API client.
//
// The tests use httptest to create a mock server that simulates the HyP3
// API, allowing the client to be tested without an actual deployment.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asf-tools/hyp3-go/pkg/types"
)

// mockJob returns a server-shaped job record with a generated ID
func mockJob(status types.Status) types.Job {
	return types.Job{
		JobID:       uuid.NewString(),
		JobType:     "RTC_GAMMA",
		RequestTime: time.Now().UTC().Truncate(time.Second),
		StatusCode:  status,
		Name:        "mock_job",
		JobParameters: map[string]any{
			"granules": []any{"g1"},
		},
	}
}

// newTestClient creates a client pointed at the given test server
func newTestClient(t *testing.T, server *httptest.Server) Client {
	t.Helper()
	c, err := NewClient(&Options{
		BaseURL: server.URL,
		Token:   "test-token",
	})
	require.NoError(t, err)
	return c
}

// writeJSON writes v as a JSON response body
func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name       string
		opts       *Options
		wantErr    bool
		validateFn func(t *testing.T, client Client)
	}{
		{
			name:    "nil options",
			opts:    nil,
			wantErr: true, // no token can come from defaults
		},
		{
			name: "valid options",
			opts: &Options{
				BaseURL: "http://example.com",
				Token:   "test-token",
				Timeout: 10 * time.Second,
			},
			wantErr: false,
			validateFn: func(t *testing.T, client Client) {
				apiClient, ok := client.(*APIClient)
				assert.True(t, ok, "client should be an *APIClient")

				assert.Equal(t, "http://example.com", apiClient.baseURL)
				assert.Equal(t, "test-token", apiClient.token)
				assert.Equal(t, 10*time.Second, apiClient.timeout)
			},
		},
		{
			name: "defaults applied",
			opts: &Options{
				Token: "test-token",
			},
			wantErr: false,
			validateFn: func(t *testing.T, client Client) {
				apiClient, ok := client.(*APIClient)
				assert.True(t, ok, "client should be an *APIClient")

				expectedDefaults := DefaultOptions()
				assert.Equal(t, expectedDefaults.BaseURL, apiClient.baseURL)
				assert.Equal(t, expectedDefaults.Timeout, apiClient.timeout)
			},
		},
		{
			name: "missing token",
			opts: &Options{
				BaseURL: "http://example.com",
			},
			wantErr: true,
		},
		{
			name: "invalid base URL",
			opts: &Options{
				BaseURL: "://invalid-url",
				Token:   "test-token",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)

				if tt.validateFn != nil {
					tt.validateFn(t, client)
				}
			}
		})
	}
}

func TestNewClientMissingTokenError(t *testing.T) {
	_, err := NewClient(&Options{BaseURL: "http://example.com"})
	var authErr *types.AuthenticationError
	require.True(t, errors.As(err, &authErr))
}

func TestRequestHeaders(t *testing.T) {
	var gotAuthorization, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		writeJSON(t, w, types.UserInfo{UserID: "some_user"})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.MyInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuthorization)
	assert.Equal(t, "hyp3-go/"+Version, gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "unauthorized",
			statusCode: http.StatusUnauthorized,
			body:       `{"detail": "invalid token"}`,
			check: func(t *testing.T, err error) {
				var authErr *types.AuthenticationError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, "invalid token", authErr.Message)
			},
		},
		{
			name:       "forbidden",
			statusCode: http.StatusForbidden,
			body:       `{"detail": "not allowed"}`,
			check: func(t *testing.T, err error) {
				var authErr *types.AuthenticationError
				require.True(t, errors.As(err, &authErr))
			},
		},
		{
			name:       "service unavailable",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"detail": "maintenance"}`,
			check: func(t *testing.T, err error) {
				var unavailableErr *types.ServiceUnavailableError
				require.True(t, errors.As(err, &unavailableErr))
				assert.Equal(t, "maintenance", unavailableErr.Message)
			},
		},
		{
			name:       "internal server error",
			statusCode: http.StatusInternalServerError,
			body:       `{"detail": "exploded"}`,
			check: func(t *testing.T, err error) {
				var serverErr *types.ServerError
				require.True(t, errors.As(err, &serverErr))
				assert.Equal(t, http.StatusInternalServerError, serverErr.StatusCode)
				assert.Equal(t, "exploded", serverErr.Message)
			},
		},
		{
			name:       "bad request with detail",
			statusCode: http.StatusBadRequest,
			body:       `{"detail": "granule does not exist"}`,
			check: func(t *testing.T, err error) {
				var serverErr *types.ServerError
				require.True(t, errors.As(err, &serverErr))
				assert.Equal(t, "granule does not exist", serverErr.Message)
			},
		},
		{
			name:       "error without JSON body",
			statusCode: http.StatusBadGateway,
			body:       "bad gateway",
			check: func(t *testing.T, err error) {
				var serverErr *types.ServerError
				require.True(t, errors.As(err, &serverErr))
				assert.Equal(t, "bad gateway", serverErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			_, err := client.GetJobByID(context.Background(), "some-job")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestMalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.MyInfo(context.Background())
	require.Error(t, err)

	var deserializationErr *types.DeserializationError
	assert.True(t, errors.As(err, &deserializationErr))
}
