package scan

import (
	"fmt"

	"argscan/internal/diag"
)

// Числовые флаги: как строковые, но проверка "следующий токен похож на
// флаг" обходится, когда он сам — конечное число. Так "-3" принимается
// как значение, хотя начинается с '-'. Для строк и массивов обхода нет —
// эта асимметрия намеренная.
func (s *scanner) coerceNumber(key, flagTok, inline string, hasInline bool, index int) {
	var src string
	switch {
	case hasInline:
		src = inline
	default:
		next, ok := s.cur.Peek()
		if !ok || (isFlagShaped(next) && !isNumericToken(next)) {
			s.bag.Add(diag.New(diag.MissingValue,
				fmt.Sprintf("missing value for %s", flagTok)).
				WithFlag(flagTok).WithKey(key).WithIndex(index))
			return
		}
		s.cur.Bump()
		src = next
	}

	f, ok := parseNumber(src)
	if !ok {
		s.bag.Add(diag.New(diag.InvalidValue,
			fmt.Sprintf("invalid number value %q for %s", src, flagTok)).
			WithFlag(flagTok).WithKey(key).WithValue(src).WithIndex(index))
		return
	}
	s.values[key] = f
}

func isNumericToken(tok string) bool {
	_, ok := parseNumber(tok)
	return ok
}
