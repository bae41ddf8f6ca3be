// Package argscan is a schema-driven command-line flag parser: declare the
// flags you expect and their types, hand over a token list, and get back
// typed values plus a structured, machine-readable issue report.
//
// The engine is a pure function of (schema, argv, options). Malformed
// schemas are construction-time errors returned before any token is
// scanned; everything found while scanning is an Issue inside the Result,
// never a Go error, never output, never a process exit. Presentation is
// entirely the caller's business.
//
// This package is the only place the ambient process argument list is
// read, and only when Options.Argv is nil. Everything below it takes an
// explicit token list, which keeps parsing deterministic and trivially
// testable.
package argscan

import (
	"os"

	"argscan/internal/diag"
	"argscan/internal/diagfmt"
	"argscan/internal/flagspec"
	"argscan/internal/scan"
)

// Re-exported model types so callers only import argscan.
type (
	Schema      = flagspec.Schema
	FlagSpec    = flagspec.Spec
	Type        = flagspec.Type
	SchemaError = flagspec.SchemaError
	Issue       = diag.Issue
	Severity    = diag.Severity
	Code        = diag.Code
	Result      = scan.Result
	ResultJSON  = diagfmt.ResultJSON
	IssueJSON   = diagfmt.IssueJSON
)

// Flag value types.
const (
	TypeString = flagspec.TypeString
	TypeBool   = flagspec.TypeBool
	TypeNumber = flagspec.TypeNumber
	TypeArray  = flagspec.TypeArray
)

// Issue codes.
const (
	CodeUnknownFlag  = diag.UnknownFlag
	CodeMissingValue = diag.MissingValue
	CodeInvalidValue = diag.InvalidValue
	CodeRequired     = diag.Required
	CodeDuplicate    = diag.Duplicate
	CodeEmptyValue   = diag.EmptyValue
)

// Issue severities.
const (
	SevWarning = diag.SevWarning
	SevError   = diag.SevError
)

// Options for one parse call.
type Options struct {
	// Argv is the explicit token sequence. nil means the hosting process
	// arguments, os.Args[1:]. An empty non-nil slice is an explicit empty
	// input.
	Argv []string
	// AllowUnknown collects unrecognized flag tokens into Result.Unknown
	// instead of failing with UNKNOWN_FLAG.
	AllowUnknown bool
	// StopAtDoubleDash controls whether "--" ends the scan. nil means true.
	StopAtDoubleDash *bool
}

// DefineSchema is an identity pass-through that anchors the Schema type at
// the call site, so composite literals infer their entry types. It performs
// no validation; that happens inside ParseArgs.
func DefineSchema(schema Schema) Schema {
	return schema
}

// ParseArgs normalizes the schema, scans the tokens once and returns a
// fresh Result. The error return carries construction-time schema faults
// (*SchemaError) only; parse-time problems are Issues in the Result.
//
// Schemas may be reused freely: each call builds its own lookup tables and
// never writes back into the schema, so concurrent calls over one Schema
// are independent.
func ParseArgs(schema Schema, opts *Options) (*Result, error) {
	var o Options
	if opts != nil {
		o = *opts
	}

	norm, err := flagspec.Normalize(schema)
	if err != nil {
		return nil, err
	}

	argv := o.Argv
	if argv == nil {
		argv = os.Args[1:]
	}

	return scan.Parse(norm, argv, scan.Options{
		AllowUnknown:     o.AllowUnknown,
		StopAtDoubleDash: o.StopAtDoubleDash,
	}), nil
}

// ToJSONResult converts a Result into its serialization-safe projection:
// absent values become JSON null, slices are defensively copied, present
// and ok pass through as-is.
func ToJSONResult(res *Result) ResultJSON {
	return diagfmt.BuildResultJSON(res, diagfmt.JSONOpts{})
}

// Bool is a convenience for the optional *bool fields (FlagSpec.AllowNo,
// Options.StopAtDoubleDash).
func Bool(v bool) *bool {
	return &v
}
