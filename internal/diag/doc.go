// Package diag defines the issue model shared by the scanner and renderers.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for every problem a parse
//     can surface (unknown flags, missing or invalid values, duplicates,
//     unmet required keys).
//   - Offer a light-weight collector (Bag) so the scanner can emit issues
//     without coupling to storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; issue production lives in internal/scan.
//
// # Data model
//
// Issue is the central record. It carries:
//
//   - Code – compact identifier with a stable string ID (see codes.go).
//   - Severity – warning or error; only errors flip a result's ok bit.
//   - Message – human oriented text; keep it short and actionable.
//   - Flag / Key / Value / Index – optional context pointing back at the
//     schema entry and the argv token that triggered the issue.
//
// There are exactly two tiers of failure in this module: malformed schemas
// are construction-time errors returned by the normalizer and never appear
// here; everything discovered while scanning tokens is an Issue. Keep the
// model data-only and side-effect free so results can be serialised for
// caching and testing.
package diag
