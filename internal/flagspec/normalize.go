package flagspec

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Normalized is the immutable lookup built once per parse call: alias →
// key resolution plus a canonicalized copy of every spec. The scanner only
// ever reads from here, never from the caller's Schema.
type Normalized struct {
	// Keys in sorted order; drives the required pass and keeps every
	// generated message deterministic.
	Keys []string
	// Specs holds canonicalized copies (own flag slices, defaults coerced
	// to their canonical Go type: string, bool, float64, []string).
	Specs map[string]Spec
	// FlagToKey resolves a declared alias to its key.
	FlagToKey map[string]string
	// Canonical maps key → first declared alias starting with "--", or ""
	// when the entry only has short aliases. Used in generated messages.
	Canonical map[string]string
}

// First returns the first declared alias for key, used when an issue has to
// name an entry that never appeared in the input.
func (n *Normalized) First(key string) string {
	spec, ok := n.Specs[key]
	if !ok || len(spec.Flags) == 0 {
		return ""
	}
	return spec.Flags[0]
}

// Lookup resolves an alias token to its key and spec.
func (n *Normalized) Lookup(flag string) (string, Spec, bool) {
	key, ok := n.FlagToKey[flag]
	if !ok {
		return "", Spec{}, false
	}
	return key, n.Specs[key], true
}

// SeedValue returns the entry's default, deep-copying array defaults so a
// caller mutating one result can never leak into the schema or a later
// parse. Returns nil when no default is declared.
func (n *Normalized) SeedValue(key string) any {
	def := n.Specs[key].Default
	if arr, ok := def.([]string); ok {
		out := make([]string, len(arr))
		copy(out, arr)
		return out
	}
	return def
}

// Normalize validates a raw schema and builds the lookup tables. Any fault
// here is fatal for the whole parse call; it is returned as *SchemaError
// before a single token is looked at.
func Normalize(schema Schema) (*Normalized, error) {
	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	norm := &Normalized{
		Keys:      keys,
		Specs:     make(map[string]Spec, len(schema)),
		FlagToKey: make(map[string]string, len(schema)),
		Canonical: make(map[string]string, len(schema)),
	}

	for _, key := range keys {
		spec := schema[key]
		if !spec.Type.Valid() {
			return nil, &SchemaError{Key: key, Reason: "unrecognized type"}
		}
		if len(spec.Flags) == 0 {
			return nil, &SchemaError{Key: key, Reason: "no flag aliases declared"}
		}
		for _, flag := range spec.Flags {
			if len(flag) < 2 || !strings.HasPrefix(flag, "-") {
				return nil, &SchemaError{
					Key: key, Flag: flag,
					Reason: "flag alias must start with '-' and be at least 2 characters",
				}
			}
			if other, taken := norm.FlagToKey[flag]; taken {
				return nil, &SchemaError{
					Key: key, Flag: flag,
					Reason: fmt.Sprintf("alias already declared by key %q", other),
				}
			}
			norm.FlagToKey[flag] = key
		}

		if spec.AllowNo != nil && spec.Type != TypeBool {
			return nil, &SchemaError{Key: key, Reason: "allowNo is only valid for boolean entries"}
		}
		if spec.AllowEmpty && spec.Type == TypeBool {
			return nil, &SchemaError{Key: key, Reason: "allowEmpty is not valid for boolean entries"}
		}

		canon, err := canonicalizeDefault(key, spec)
		if err != nil {
			return nil, err
		}
		spec.Default = canon

		// собственная копия алиасов — схема вызывающего остаётся нетронутой
		flags := make([]string, len(spec.Flags))
		copy(flags, spec.Flags)
		spec.Flags = flags

		norm.Specs[key] = spec
		norm.Canonical[key] = firstLongAlias(flags)
	}

	return norm, nil
}

func firstLongAlias(flags []string) string {
	for _, f := range flags {
		if strings.HasPrefix(f, "--") {
			return f
		}
	}
	return ""
}

// canonicalizeDefault checks a declared default against the entry's type
// and converts it to the canonical representation the scanner seeds into
// results: string, bool, float64, or []string.
func canonicalizeDefault(key string, spec Spec) (any, error) {
	if spec.Default == nil {
		return nil, nil
	}
	switch spec.Type {
	case TypeString:
		s, ok := spec.Default.(string)
		if !ok {
			return nil, &SchemaError{Key: key, Reason: "default does not match type string"}
		}
		return s, nil
	case TypeBool:
		b, ok := spec.Default.(bool)
		if !ok {
			return nil, &SchemaError{Key: key, Reason: "default does not match type boolean"}
		}
		return b, nil
	case TypeNumber:
		f, ok := numericDefault(spec.Default)
		if !ok {
			return nil, &SchemaError{Key: key, Reason: "default does not match type number"}
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, &SchemaError{Key: key, Reason: "number default must be finite"}
		}
		return f, nil
	case TypeArray:
		arr, ok := stringSliceDefault(spec.Default)
		if !ok {
			return nil, &SchemaError{Key: key, Reason: "array default must contain only strings"}
		}
		return arr, nil
	case TypeInvalid:
	}
	return nil, &SchemaError{Key: key, Reason: "unrecognized type"}
}

func numericDefault(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func stringSliceDefault(v any) ([]string, bool) {
	switch arr := v.(type) {
	case []string:
		out := make([]string, len(arr))
		copy(out, arr)
		return out, true
	case []any:
		out := make([]string, 0, len(arr))
		for _, el := range arr {
			s, ok := el.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
