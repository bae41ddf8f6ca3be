package flagspec

import "fmt"

// SchemaError is a construction-time fault: the schema itself is malformed
// and no token can be scanned until the caller fixes it. It never appears
// as a parse issue.
type SchemaError struct {
	Key    string
	Flag   string
	Reason string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Key != "" && e.Flag != "":
		return fmt.Sprintf("schema: key %q flag %q: %s", e.Key, e.Flag, e.Reason)
	case e.Key != "":
		return fmt.Sprintf("schema: key %q: %s", e.Key, e.Reason)
	default:
		return fmt.Sprintf("schema: %s", e.Reason)
	}
}
