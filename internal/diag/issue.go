package diag

// Issue is the central parse-time record. Optional context fields are the
// empty string (Flag/Key/Value) or NoIndex (Index) when not applicable.
type Issue struct {
	Code     Code
	Severity Severity
	Message  string
	Flag     string
	Key      string
	Value    string
	Index    int
}

// NoIndex marks issues that do not point at a concrete argv position,
// e.g. Required issues emitted after the scan.
const NoIndex = -1

// New constructs an issue with the code's fixed severity.
func New(code Code, msg string) Issue {
	return Issue{
		Code:     code,
		Severity: code.DefaultSeverity(),
		Message:  msg,
		Index:    NoIndex,
	}
}

// WithFlag attaches the offending flag token.
func (i Issue) WithFlag(flag string) Issue {
	i.Flag = flag
	return i
}

// WithKey attaches the schema key the issue belongs to.
func (i Issue) WithKey(key string) Issue {
	i.Key = key
	return i
}

// WithValue attaches the raw offending value.
func (i Issue) WithValue(value string) Issue {
	i.Value = value
	return i
}

// WithIndex attaches the argv position of the triggering token.
func (i Issue) WithIndex(index int) Issue {
	i.Index = index
	return i
}
