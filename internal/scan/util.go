package scan

import (
	"math"
	"strconv"
	"strings"
)

// isFlagShaped reports whether a token is a candidate flag: starts with
// '-' and is at least two characters long. A bare "-" is data (commonly
// meaning stdin), never a flag.
func isFlagShaped(tok string) bool {
	return len(tok) >= 2 && tok[0] == '-'
}

// splitInline splits "--flag=value" on the first '=' only; the value may
// itself contain '='.
func splitInline(tok string) (flag, inline string, ok bool) {
	i := strings.IndexByte(tok, '=')
	if i < 0 {
		return tok, "", false
	}
	return tok[:i], tok[i+1:], true
}

// parseBoolWord recognizes the boolean vocabulary, case-insensitively.
func parseBoolWord(word string) (bool, bool) {
	switch strings.ToLower(word) {
	case "true", "1", "yes", "y", "on":
		return true, true
	case "false", "0", "no", "n", "off":
		return false, true
	}
	return false, false
}

// parseNumber parses a finite float64. Infinities and NaN are rejected so
// downstream consumers never see a non-finite value.
func parseNumber(word string) (float64, bool) {
	f, err := strconv.ParseFloat(word, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
