package types

import (
	"encoding/json"
	"fmt"
)

// Status represents the server-reported processing state of a job
type Status string

// Job status constants
const (
	// StatusPending indicates the job is waiting to be processed
	StatusPending Status = "PENDING"
	// StatusRunning indicates the job is currently being processed
	StatusRunning Status = "RUNNING"
	// StatusSucceeded indicates the job has finished successfully
	StatusSucceeded Status = "SUCCEEDED"
	// StatusFailed indicates the job has failed to complete
	StatusFailed Status = "FAILED"
)

// statuses lists every status the API reports, in lifecycle order.
var statuses = []Status{
	StatusPending,
	StatusRunning,
	StatusSucceeded,
	StatusFailed,
}

// ParseStatus converts a string representation of a job status to Status type
func ParseStatus(str string) (Status, error) {
	for _, status := range statuses {
		if string(status) == str {
			return status, nil
		}
	}

	return Status(""), fmt.Errorf("invalid job status: %s", str)
}

// Terminal reports whether no further transitions are possible from s.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

func (s Status) String() string {
	return string(s)
}

// MarshalJSON implements the json.Marshaler interface for Status
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON implements the json.Unmarshaler interface for Status
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &DeserializationError{Field: "status_code", Message: err.Error()}
	}

	status, err := ParseStatus(str)
	if err != nil {
		return &DeserializationError{Field: "status_code", Message: err.Error()}
	}

	*s = status
	return nil
}
