package diag

// Code identifies the kind of parse issue. The ID form is the stable
// wire string consumers match on; never renumber or rename published IDs.
type Code uint8

const (
	UnknownCode Code = iota
	// UnknownFlag — токен выглядит как флаг, но не объявлен в схеме.
	UnknownFlag
	// MissingValue — флаг требует значение, но взять его неоткуда.
	MissingValue
	// InvalidValue — источник значения есть, но он не парсится в тип флага.
	InvalidValue
	// Required — обязательный ключ не встретился во входе.
	Required
	// Duplicate — повторное появление не-массивного флага (warning).
	Duplicate
	// EmptyValue — пустая строка там, где allowEmpty не разрешён.
	EmptyValue
)

// ID returns the stable machine-readable identifier.
func (c Code) ID() string {
	switch c {
	case UnknownFlag:
		return "UNKNOWN_FLAG"
	case MissingValue:
		return "MISSING_VALUE"
	case InvalidValue:
		return "INVALID_VALUE"
	case Required:
		return "REQUIRED"
	case Duplicate:
		return "DUPLICATE"
	case EmptyValue:
		return "EMPTY_VALUE"
	}
	return "UNKNOWN"
}

func (c Code) String() string {
	return c.ID()
}

// DefaultSeverity maps a code to its fixed severity. Only Duplicate is a
// warning; everything else blocks ok.
func (c Code) DefaultSeverity() Severity {
	if c == Duplicate {
		return SevWarning
	}
	return SevError
}
