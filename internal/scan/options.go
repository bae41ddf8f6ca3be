package scan

// Options tune the dispatch loop. The zero value gives the documented
// defaults: unknown flags are errors and "--" terminates the scan.
type Options struct {
	// AllowUnknown collects unrecognized flag tokens into Result.Unknown
	// instead of emitting UNKNOWN_FLAG errors.
	AllowUnknown bool
	// StopAtDoubleDash controls whether a bare "--" stops scanning and
	// moves the remaining tokens verbatim into Result.Rest. nil means true.
	StopAtDoubleDash *bool
}

func (o Options) stopAtDoubleDash() bool {
	return o.StopAtDoubleDash == nil || *o.StopAtDoubleDash
}
