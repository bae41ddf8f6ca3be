package scan

import (
	"fmt"

	"argscan/internal/diag"
	"argscan/internal/flagspec"
)

// Массивы: непустой инлайн — первый элемент, дальше жадно собираем токены
// вперёд до первого флагоподобного. Повторное появление того же флага
// дописывает в уже накопленное; засеянный дефолт при первом появлении
// замещается, а не дополняется.
func (s *scanner) coerceArray(key string, spec flagspec.Spec, flagTok, inline string, hasInline bool, wasPresent bool, index int) {
	var collected []string
	if hasInline && inline != "" {
		collected = append(collected, inline)
	}
	for {
		next, ok := s.cur.Peek()
		if !ok || isFlagShaped(next) {
			break
		}
		s.cur.Bump()
		collected = append(collected, next)
	}

	if len(collected) == 0 {
		if !spec.AllowEmpty {
			s.bag.Add(diag.New(diag.MissingValue,
				fmt.Sprintf("missing value for %s", flagTok)).
				WithFlag(flagTok).WithKey(key).WithIndex(index))
			return
		}
		// allowEmpty: значение становится пустым списком, либо остаётся
		// уже накопленным от предыдущего появления.
		if !wasPresent {
			s.values[key] = []string{}
		} else if _, ok := s.values[key].([]string); !ok {
			s.values[key] = []string{}
		}
		return
	}

	base := []string{}
	if wasPresent {
		if prior, ok := s.values[key].([]string); ok {
			base = prior
		}
	}
	s.values[key] = append(base, collected...)
}
