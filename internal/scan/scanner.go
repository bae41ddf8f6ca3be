package scan

import (
	"fmt"
	"strings"

	"argscan/internal/diag"
	"argscan/internal/flagspec"
)

const negationPrefix = "--no-"

// scanner keeps the per-call state of one dispatch loop. Nothing in here
// survives the call.
type scanner struct {
	norm *flagspec.Normalized
	opts Options
	cur  Cursor

	values  map[string]any
	present map[string]bool
	rest    []string
	unknown []string
	bag     *diag.Bag
}

// Parse walks argv once, left to right, and assembles the result. It is a
// pure function of its arguments: argv is never mutated, no ambient state
// is read, and concurrent calls over one Normalized are independent.
func Parse(norm *flagspec.Normalized, argv []string, opts Options) *Result {
	s := &scanner{
		norm:    norm,
		opts:    opts,
		cur:     NewCursor(argv),
		values:  make(map[string]any, len(norm.Keys)),
		present: make(map[string]bool, len(norm.Keys)),
		bag:     diag.NewBag(),
	}

	// Засеять дефолты: каждый ключ получает ровно одну запись в values и
	// present, независимо от входа.
	for _, key := range norm.Keys {
		s.values[key] = norm.SeedValue(key)
		s.present[key] = false
	}

	s.run()
	s.requiredPass()

	return &Result{
		Values:  s.values,
		Present: s.present,
		Rest:    s.rest,
		Unknown: s.unknown,
		Issues:  s.bag.Items(),
		OK:      !s.bag.HasErrors(),
	}
}

func (s *scanner) run() {
	for !s.cur.EOF() {
		index := s.cur.Index()
		tok, _ := s.cur.Bump()

		// 1) "--" завершает сканирование: хвост уходит в rest как есть.
		if s.opts.stopAtDoubleDash() && tok == "--" {
			s.rest = append(s.rest, s.cur.Drain()...)
			return
		}

		// 2) Не похоже на флаг (включая одиночный "-") — в rest.
		if !isFlagShaped(tok) {
			s.rest = append(s.rest, tok)
			continue
		}

		// 3) Инлайн-значение после первого '='.
		flagTok, inline, hasInline := splitInline(tok)

		// 4) Синтетическая форма отрицания --no-<flag>, только если сам
		// токен не объявлен как алиас.
		if strings.HasPrefix(flagTok, negationPrefix) {
			if _, _, declared := s.norm.Lookup(flagTok); !declared {
				base := "--" + flagTok[len(negationPrefix):]
				if key, spec, ok := s.norm.Lookup(base); ok && spec.NegationAllowed() {
					s.negate(key, flagTok, index)
					continue
				}
			}
		}

		// 5) Обычное разрешение алиаса.
		key, spec, ok := s.norm.Lookup(flagTok)
		if !ok {
			if s.opts.AllowUnknown {
				s.unknown = append(s.unknown, tok)
			} else {
				s.bag.Add(diag.New(diag.UnknownFlag,
					fmt.Sprintf("unknown flag %s", flagTok)).
					WithFlag(flagTok).WithIndex(index))
			}
			continue
		}

		// 6) Повтор скалярного флага — предупреждение, последний побеждает.
		// Массивы повторяются намеренно: это их механизм накопления.
		wasPresent := s.present[key]
		if wasPresent && spec.Type != flagspec.TypeArray {
			s.bag.Add(diag.New(diag.Duplicate,
				fmt.Sprintf("flag %s provided more than once", flagTok)).
				WithFlag(flagTok).WithKey(key).WithIndex(index))
		}
		s.present[key] = true

		switch spec.Type {
		case flagspec.TypeBool:
			s.coerceBool(key, flagTok, inline, hasInline, index)
		case flagspec.TypeString:
			s.coerceString(key, spec, flagTok, inline, hasInline, index)
		case flagspec.TypeNumber:
			s.coerceNumber(key, flagTok, inline, hasInline, index)
		case flagspec.TypeArray:
			s.coerceArray(key, spec, flagTok, inline, hasInline, wasPresent, index)
		case flagspec.TypeInvalid:
			// normalizer rejects invalid types before any scan
		}
	}
}

// negate handles --no-<flag>: presence is recorded and the value forced to
// false. An inline value on the negation form is ignored.
func (s *scanner) negate(key, flagTok string, index int) {
	if s.present[key] {
		s.bag.Add(diag.New(diag.Duplicate,
			fmt.Sprintf("flag %s provided more than once", flagTok)).
			WithFlag(flagTok).WithKey(key).WithIndex(index))
	}
	s.present[key] = true
	s.values[key] = false
}

// requiredPass runs after the scan: required keys must have literally
// appeared in the input. A declared default is a convenience value, it
// does not satisfy Required.
func (s *scanner) requiredPass() {
	for _, key := range s.norm.Keys {
		spec := s.norm.Specs[key]
		if spec.Required && !s.present[key] {
			flag := s.norm.First(key)
			s.bag.Add(diag.New(diag.Required,
				fmt.Sprintf("required flag %s was not provided", flag)).
				WithFlag(flag).WithKey(key))
		}
	}
}
