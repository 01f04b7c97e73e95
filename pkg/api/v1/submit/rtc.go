package submit

import (
	"fmt"
	"slices"

	"github.com/asf-tools/hyp3-go/pkg/types"
)

// Allowed values for RTC enumerated options
var (
	rtcRadiometries = []string{"sigma0", "gamma0"}
	rtcResolutions  = []int{10, 20, 30}
	rtcScales       = []string{"amplitude", "decibel", "power"}
	rtcDEMNames     = []string{"copernicus"}
)

// RTCOptions are the processing options for an RTC (radiometric terrain
// correction) job. Use DefaultRTCOptions as a starting point.
type RTCOptions struct {
	// DEMMatching coregisters SAR data to the DEM rather than using dead
	// reckoning based on orbit files
	DEMMatching bool
	// IncludeDEM includes the DEM file in the product package
	IncludeDEM bool
	// IncludeIncMap includes the local incidence angle map in the product package
	IncludeIncMap bool
	// IncludeRGB includes a false-color RGB decomposition for dual-pol granules
	IncludeRGB bool
	// IncludeScatteringArea includes the scattering area in the product package
	IncludeScatteringArea bool
	// Radiometry is the backscatter normalization, sigma0 or gamma0
	Radiometry string
	// Resolution is the output pixel spacing in meters: 10, 20, or 30
	Resolution int
	// Scale of the output image: amplitude, decibel, or power
	Scale string
	// SpeckleFilter applies an Enhanced Lee speckle filter
	SpeckleFilter bool
	// DEMName selects the DEM used for processing; copernicus is the only option
	DEMName string
}

// DefaultRTCOptions returns the API's default RTC processing options
func DefaultRTCOptions() RTCOptions {
	return RTCOptions{
		Radiometry: "gamma0",
		Resolution: 30,
		Scale:      "power",
		DEMName:    "copernicus",
	}
}

// RTCJob builds a job spec for an RTC job over a single granule
func RTCJob(granule, name string, opts RTCOptions) (types.JobSpec, error) {
	if err := requireGranule("granule", granule); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireOneOf("radiometry", opts.Radiometry, rtcRadiometries); err != nil {
		return types.JobSpec{}, err
	}
	if !slices.Contains(rtcResolutions, opts.Resolution) {
		return types.JobSpec{}, &types.ValidationError{
			Param:   "resolution",
			Allowed: []string{"10", "20", "30"},
			Message: fmt.Sprintf("unrecognized value %d", opts.Resolution),
		}
	}
	if err := requireOneOf("scale", opts.Scale, rtcScales); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireOneOf("dem_name", opts.DEMName, rtcDEMNames); err != nil {
		return types.JobSpec{}, err
	}

	return types.JobSpec{
		JobType: JobTypeRTC,
		JobParameters: map[string]any{
			"granules":                []string{granule},
			"dem_matching":            opts.DEMMatching,
			"include_dem":             opts.IncludeDEM,
			"include_inc_map":         opts.IncludeIncMap,
			"include_rgb":             opts.IncludeRGB,
			"include_scattering_area": opts.IncludeScatteringArea,
			"radiometry":              opts.Radiometry,
			"resolution":              opts.Resolution,
			"scale":                   opts.Scale,
			"speckle_filter":          opts.SpeckleFilter,
			"dem_name":                opts.DEMName,
		},
		Name: name,
	}, nil
}
