// Package sym defines canonical symbols for logbox operations.
// These symbols are stable across CLI output and documentation; each
// subcommand prefixes its short description with its glyph.
package sym

// Operation glyphs — the visual expression of each toolbox operation.
const (
	Merge     = "⧺" // merge — concatenate record streams in input order
	Filter    = "▽" // filter — include/exclude records by field constraints
	Slice     = "◷" // timeslice — symmetric window around a center instant
	Frame     = "⧖" // timeframe — explicit start/end window
	Stats     = "∑" // stats — streaming counts and chronology
	Normalize = "☰" // normalize — array document to line-delimited records
	Fetch     = "⇣" // fetch — download exports from the object store
	Config    = "≡" // config — configuration and system settings
)

// SymbolToCommand maps glyph strings to their subcommand names.
var SymbolToCommand = map[string]string{
	Merge:     "merge",
	Filter:    "filter",
	Slice:     "timeslice",
	Frame:     "timeframe",
	Stats:     "stats",
	Normalize: "normalize",
	Fetch:     "fetch",
	Config:    "config",
}

// CommandToSymbol maps subcommand names to their canonical glyph strings.
var CommandToSymbol = map[string]string{
	"merge":     Merge,
	"filter":    Filter,
	"timeslice": Slice,
	"timeframe": Frame,
	"stats":     Stats,
	"normalize": Normalize,
	"fetch":     Fetch,
	"config":    Config,
}

// CommandDescriptions provides human-readable explanations for help output.
var CommandDescriptions = map[string]string{
	"merge":     "Merge — Concatenate record streams in input order",
	"filter":    "Filter — Include/exclude records by field constraints",
	"timeslice": "Timeslice — Symmetric window around a center instant",
	"timeframe": "Timeframe — Explicit start/end window",
	"stats":     "Stats — Streaming counts and chronology",
	"normalize": "Normalize — Array document to line-delimited records",
	"fetch":     "Fetch — Download exports from the object store",
	"config":    "Config — Configuration and system settings",
}
