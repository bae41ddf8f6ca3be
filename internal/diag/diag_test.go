package diag

import "testing"

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{UnknownFlag, "UNKNOWN_FLAG"},
		{MissingValue, "MISSING_VALUE"},
		{InvalidValue, "INVALID_VALUE"},
		{Required, "REQUIRED"},
		{Duplicate, "DUPLICATE"},
		{EmptyValue, "EMPTY_VALUE"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("Expected ID %q, got %q", tt.id, got)
		}
	}
}

func TestDefaultSeverities(t *testing.T) {
	// DUPLICATE — единственное предупреждение, остальные — ошибки
	for _, code := range []Code{UnknownFlag, MissingValue, InvalidValue, Required, EmptyValue} {
		if code.DefaultSeverity() != SevError {
			t.Errorf("Expected %s to be an error", code.ID())
		}
	}
	if Duplicate.DefaultSeverity() != SevWarning {
		t.Error("Expected DUPLICATE to be a warning")
	}
}

func TestSeverityString(t *testing.T) {
	if SevWarning.String() != "warning" || SevError.String() != "error" {
		t.Errorf("Unexpected severity strings: %q, %q", SevWarning.String(), SevError.String())
	}
}

func TestNewCarriesDefaults(t *testing.T) {
	issue := New(Required, "required flag --x was not provided")
	if issue.Severity != SevError {
		t.Errorf("Expected error severity, got %v", issue.Severity)
	}
	if issue.Index != NoIndex {
		t.Errorf("Expected NoIndex by default, got %d", issue.Index)
	}
}

func TestIssueChaining(t *testing.T) {
	issue := New(InvalidValue, "invalid number value").
		WithFlag("--n").WithKey("n").WithValue("abc").WithIndex(2)

	if issue.Flag != "--n" || issue.Key != "n" || issue.Value != "abc" || issue.Index != 2 {
		t.Errorf("Unexpected issue fields: %+v", issue)
	}
}

func TestBag(t *testing.T) {
	bag := NewBag()
	if bag.HasErrors() || bag.HasWarnings() || bag.Len() != 0 {
		t.Fatal("Expected empty bag")
	}

	bag.Add(New(Duplicate, "dup"))
	if bag.HasErrors() {
		t.Error("Expected no errors after a warning")
	}
	if !bag.HasWarnings() {
		t.Error("Expected warnings after a warning")
	}

	bag.Add(New(UnknownFlag, "unknown"))
	if !bag.HasErrors() {
		t.Error("Expected errors after an error")
	}
	if bag.Len() != 2 {
		t.Errorf("Expected 2 issues, got %d", bag.Len())
	}

	// порядок добавления сохраняется
	items := bag.Items()
	if items[0].Code != Duplicate || items[1].Code != UnknownFlag {
		t.Errorf("Expected append order, got %v then %v", items[0].Code, items[1].Code)
	}

	// Items отдаёт копию
	items[0] = New(Required, "overwritten")
	if bag.Items()[0].Code != Duplicate {
		t.Error("Expected bag unaffected by mutating the returned slice")
	}
}
