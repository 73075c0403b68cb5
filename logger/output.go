package logger

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
// Verbosity Levels:
//
//	0 (default) - User-facing output only: results, errors with hints, final status
//	1 (-v)      - + Progress, resolved input file lists, run summaries
//	2 (-vv)     - + Timing, config values applied, computed window bounds
//	3 (-vvv)    - + Per-record keep/drop decisions and raw failed lines

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Reports, final counts
	OutputErrors                        // Errors with hints and resolution steps
	OutputStatus                        // Final success/failure status

	// Level 1 (-v) - Informational
	OutputProgress // Progress indicators (e.g. downloads, large merges)
	OutputFileList // Resolved input paths after glob/recursion expansion
	OutputSummary  // End-of-run summaries (written/dropped/failed counts)

	// Level 2 (-vv) - Detailed
	OutputTiming // Operation timing (e.g. "pass took 42ms")
	OutputConfig // Config values loaded/applied, window bounds

	// Level 3 (-vvv) - Per-record
	OutputPerRecord // Individual keep/drop decisions, raw failed lines
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults: VerbosityUser,
	OutputErrors:  VerbosityUser,
	OutputStatus:  VerbosityUser,

	OutputProgress: VerbosityInfo,
	OutputFileList: VerbosityInfo,
	OutputSummary:  VerbosityInfo,

	OutputTiming: VerbosityDebug,
	OutputConfig: VerbosityDebug,

	OutputPerRecord: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

// categoryNames provides human-readable names for output categories
var categoryNames = map[OutputCategory]string{
	OutputResults:   "results",
	OutputErrors:    "errors",
	OutputStatus:    "status",
	OutputProgress:  "progress",
	OutputFileList:  "file-list",
	OutputSummary:   "summary",
	OutputTiming:    "timing",
	OutputConfig:    "config",
	OutputPerRecord: "per-record",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, progress, and summaries"
	case VerbosityDebug:
		return "above + timing and config details"
	case VerbosityTrace:
		return "above + per-record decisions"
	default:
		if verbosity > VerbosityTrace {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
