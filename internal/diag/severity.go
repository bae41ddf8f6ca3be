package diag

// Severity defines the importance of an issue.
type Severity uint8

const (
	// SevWarning is for advisory issues that never fail a parse.
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
