package scan

import (
	"fmt"

	"argscan/internal/diag"
)

// Булевы флаги: значение берётся из инлайна, иначе из следующего токена —
// но только если тот сам парсится как булево слово. Голое присутствие
// означает true.
//
// Инлайн проверяется всегда: явное-но-невалидное значение (--flag=banana)
// это INVALID_VALUE, а не "присутствие значит true". Условным является
// только заглядывание вперёд.
func (s *scanner) coerceBool(key, flagTok, inline string, hasInline bool, index int) {
	if hasInline {
		b, ok := parseBoolWord(inline)
		if !ok {
			s.bag.Add(diag.New(diag.InvalidValue,
				fmt.Sprintf("invalid boolean value %q for %s", inline, flagTok)).
				WithFlag(flagTok).WithKey(key).WithValue(inline).WithIndex(index))
			return
		}
		s.values[key] = b
		return
	}

	if next, ok := s.cur.Peek(); ok {
		if b, okWord := parseBoolWord(next); okWord {
			s.cur.Bump()
			s.values[key] = b
			return
		}
	}

	s.values[key] = true
}
