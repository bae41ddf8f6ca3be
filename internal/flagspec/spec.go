package flagspec

// Type discriminates the four value kinds a flag can carry. The zero value
// is invalid so a Spec literal that forgets Type fails normalization
// instead of silently parsing as a string.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeString
	TypeBool
	TypeNumber
	TypeArray
)

func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeBool, TypeNumber, TypeArray:
		return true
	case TypeInvalid:
		return false
	}
	return false
}

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeArray:
		return "array"
	case TypeInvalid:
		return "invalid"
	}
	return "invalid"
}

// Spec describes one schema entry: what the flag is called and how its
// value is coerced.
type Spec struct {
	// Type selects the coercer. Mandatory.
	Type Type
	// Flags is the non-empty list of aliases, each starting with '-' and at
	// least two characters long. Aliases are unique across the whole schema.
	Flags []string
	// Required keys must literally appear in the input; a Default does not
	// satisfy Required.
	Required bool
	// Default is the value seeded into the result before scanning. Must
	// match Type: string, bool, finite number, or all-string slice.
	Default any
	// AllowEmpty permits an empty string value (string/array entries only).
	AllowEmpty bool
	// AllowNo controls the synthetic --no-<flag> negation form. Boolean
	// entries only; nil means allowed.
	AllowNo *bool
}

// NegationAllowed reports whether --no-<flag> may flip this entry to false.
func (s Spec) NegationAllowed() bool {
	return s.Type == TypeBool && (s.AllowNo == nil || *s.AllowNo)
}

// Schema maps result keys to their flag specs. Go maps carry no declaration
// order, so everything order-sensitive (the required pass, duplicate-alias
// messages) runs over lexicographically sorted keys.
type Schema map[string]Spec
