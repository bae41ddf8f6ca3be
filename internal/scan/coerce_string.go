package scan

import (
	"fmt"

	"argscan/internal/diag"
	"argscan/internal/flagspec"
)

// Строковые флаги: инлайн, иначе следующий токен — если он существует и
// сам не похож на флаг. Значение, начинающееся с '-', сюда не попадает
// (см. coerce_number.go для исключения).
func (s *scanner) coerceString(key string, spec flagspec.Spec, flagTok, inline string, hasInline bool, index int) {
	var src string
	switch {
	case hasInline:
		src = inline
	default:
		next, ok := s.cur.Peek()
		if !ok || isFlagShaped(next) {
			s.bag.Add(diag.New(diag.MissingValue,
				fmt.Sprintf("missing value for %s", flagTok)).
				WithFlag(flagTok).WithKey(key).WithIndex(index))
			return
		}
		s.cur.Bump()
		src = next
	}

	if src == "" && !spec.AllowEmpty {
		s.bag.Add(diag.New(diag.EmptyValue,
			fmt.Sprintf("empty value for %s", flagTok)).
			WithFlag(flagTok).WithKey(key).WithIndex(index))
		return
	}
	s.values[key] = src
}
