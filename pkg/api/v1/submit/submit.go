// Package submit builds wire-format job specifications for each supported
// job type. Builders validate their parameters and never perform network
// I/O; the resulting JobSpec is handed to the client for submission.
package submit

import (
	"github.com/asf-tools/hyp3-go/pkg/types"
)

// Job type tags understood by the API
const (
	JobTypeAutoRIFT       = "AUTORIFT"
	JobTypeRTC            = "RTC_GAMMA"
	JobTypeInSAR          = "INSAR_GAMMA"
	JobTypeInSARISCEBurst = "INSAR_ISCE_BURST"
)

// requireGranule fails when a granule (scene) identifier is absent
func requireGranule(param, granule string) error {
	if granule == "" {
		return &types.ValidationError{Param: param, Message: "a granule name is required"}
	}
	return nil
}

// requireOneOf fails when value is not one of the allowed values for param
func requireOneOf(param, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &types.ValidationError{
		Param:   param,
		Allowed: allowed,
		Message: "unrecognized value " + value,
	}
}

// AutoRIFTJob builds a job spec for an autoRIFT job over a pair of granules.
// name may be empty for an unnamed job.
func AutoRIFTJob(granule1, granule2, name string) (types.JobSpec, error) {
	if err := requireGranule("granule1", granule1); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireGranule("granule2", granule2); err != nil {
		return types.JobSpec{}, err
	}

	return types.JobSpec{
		JobType: JobTypeAutoRIFT,
		JobParameters: map[string]any{
			"granules": []string{granule1, granule2},
		},
		Name: name,
	}, nil
}
