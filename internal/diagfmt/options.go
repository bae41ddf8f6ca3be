package diagfmt

// PrettyOpts configures human-readable rendering of a parse result.
type PrettyOpts struct {
	Color bool
	// ShowValues includes the coerced per-key values, not just issues.
	ShowValues bool
	// MaxIssues обрезает вывод, не сам результат. 0 — не ограничено.
	MaxIssues int
}

// JSONOpts configures machine-readable output of a parse result.
type JSONOpts struct {
	// MaxIssues обрезает вывод, не сам результат. 0 — не ограничено.
	MaxIssues int
}
