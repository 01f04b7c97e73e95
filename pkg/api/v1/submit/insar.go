package submit

import (
	"fmt"

	"github.com/asf-tools/hyp3-go/internal/logger"
	"github.com/asf-tools/hyp3-go/pkg/types"
)

// Allowed looks values per job type
var (
	insarLooks     = []string{"20x4", "10x2"}
	isceBurstLooks = []string{"20x4", "10x2", "5x1"}
)

// InSAROptions are the processing options for an InSAR job. Use
// DefaultInSAROptions as a starting point.
type InSAROptions struct {
	// IncludeLookVectors includes the look vector theta and phi files in the
	// product package
	IncludeLookVectors bool
	// IncludeLOSDisplacement includes a line-of-sight displacement GeoTIFF.
	//
	// Deprecated: use IncludeDisplacementMaps instead. Setting this flag has
	// the same effect and logs a deprecation warning.
	IncludeLOSDisplacement bool
	// IncludeIncMap includes the local and ellipsoidal incidence angle maps
	IncludeIncMap bool
	// Looks is the number of looks to take in range and azimuth: 20x4 or 10x2
	Looks string
	// IncludeDEM includes the digital elevation model GeoTIFF
	IncludeDEM bool
	// IncludeWrappedPhase includes the wrapped phase GeoTIFF
	IncludeWrappedPhase bool
	// ApplyWaterMask marks pixels over coastal and large inland waterbodies
	// as invalid for phase unwrapping
	ApplyWaterMask bool
	// IncludeDisplacementMaps includes line-of-sight and vertical
	// displacement maps in the product package
	IncludeDisplacementMaps bool
	// PhaseFilterParameter is the adaptive phase filter strength, in [0, 1].
	// Zero skips the adaptive phase filter.
	PhaseFilterParameter float64
}

// DefaultInSAROptions returns the API's default InSAR processing options
func DefaultInSAROptions() InSAROptions {
	return InSAROptions{
		Looks:                "20x4",
		PhaseFilterParameter: 0.6,
	}
}

// InSARJob builds a job spec for an InSAR job over a pair of granules
func InSARJob(granule1, granule2, name string, opts InSAROptions) (types.JobSpec, error) {
	if err := requireGranule("granule1", granule1); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireGranule("granule2", granule2); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireOneOf("looks", opts.Looks, insarLooks); err != nil {
		return types.JobSpec{}, err
	}
	if opts.PhaseFilterParameter < 0 || opts.PhaseFilterParameter > 1 {
		return types.JobSpec{}, &types.ValidationError{
			Param:   "phase_filter_parameter",
			Message: fmt.Sprintf("%v is out of range [0, 1]", opts.PhaseFilterParameter),
		}
	}

	includeDisplacementMaps := opts.IncludeDisplacementMaps
	if opts.IncludeLOSDisplacement {
		logger.Warn("The IncludeLOSDisplacement option has been deprecated in favor of " +
			"IncludeDisplacementMaps, and will be removed in a future release")
		includeDisplacementMaps = true
	}

	return types.JobSpec{
		JobType: JobTypeInSAR,
		JobParameters: map[string]any{
			"granules":                  []string{granule1, granule2},
			"include_look_vectors":      opts.IncludeLookVectors,
			"include_inc_map":           opts.IncludeIncMap,
			"looks":                     opts.Looks,
			"include_dem":               opts.IncludeDEM,
			"include_wrapped_phase":     opts.IncludeWrappedPhase,
			"apply_water_mask":          opts.ApplyWaterMask,
			"include_displacement_maps": includeDisplacementMaps,
			"phase_filter_parameter":    opts.PhaseFilterParameter,
		},
		Name: name,
	}, nil
}

// InSARISCEBurstOptions are the processing options for an InSAR ISCE burst
// job. Use DefaultInSARISCEBurstOptions as a starting point.
type InSARISCEBurstOptions struct {
	// ApplyWaterMask marks pixels over coastal and large inland waterbodies
	// as invalid for phase unwrapping
	ApplyWaterMask bool
	// Looks is the number of looks to take in range and azimuth: 20x4, 10x2,
	// or 5x1
	Looks string
}

// DefaultInSARISCEBurstOptions returns the API's default burst processing
// options
func DefaultInSARISCEBurstOptions() InSARISCEBurstOptions {
	return InSARISCEBurstOptions{
		Looks: "20x4",
	}
}

// InSARISCEBurstJob builds a job spec for an InSAR ISCE burst job over a
// pair of burst granules
func InSARISCEBurstJob(granule1, granule2, name string, opts InSARISCEBurstOptions) (types.JobSpec, error) {
	if err := requireGranule("granule1", granule1); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireGranule("granule2", granule2); err != nil {
		return types.JobSpec{}, err
	}
	if err := requireOneOf("looks", opts.Looks, isceBurstLooks); err != nil {
		return types.JobSpec{}, err
	}

	return types.JobSpec{
		JobType: JobTypeInSARISCEBurst,
		JobParameters: map[string]any{
			"granules":         []string{granule1, granule2},
			"apply_water_mask": opts.ApplyWaterMask,
			"looks":            opts.Looks,
		},
		Name: name,
	}, nil
}
