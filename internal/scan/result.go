package scan

import "argscan/internal/diag"

// Result is the outcome of one parse call. It is fully assembled before
// return and never touched by the engine afterwards.
type Result struct {
	// Values holds one entry per schema key. nil means absent (no input
	// occurrence and no default). Concrete types per flag type: string,
	// bool, float64, []string.
	Values map[string]any
	// Present is true iff the user literally supplied a matching flag (or
	// a boolean negation). A default never sets presence.
	Present map[string]bool
	// Rest is the ordered list of leftover non-flag tokens, including the
	// verbatim tail after a "--" terminator.
	Rest []string
	// Unknown is the ordered list of unrecognized flag tokens; populated
	// only under Options.AllowUnknown.
	Unknown []string
	// Issues in emission order.
	Issues []diag.Issue
	// OK is true iff no issue carries error severity. Warnings never flip
	// this.
	OK bool
}
