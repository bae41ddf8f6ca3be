package diag

// Bag накапливает issues в порядке появления во входе.
// Порядок — часть контракта результата, поэтому никакой сортировки.
type Bag struct {
	items []Issue
}

func NewBag() *Bag {
	return &Bag{}
}

// Add appends an issue, preserving emission order.
func (b *Bag) Add(i Issue) {
	b.items = append(b.items, i)
}

// HasErrors возвращает true, если есть хотя бы одна issue с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна issue с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected issues as a fresh slice, so callers can hold
// on to it without aliasing the bag's internal storage.
func (b *Bag) Items() []Issue {
	out := make([]Issue, len(b.items))
	copy(out, b.items)
	return out
}
