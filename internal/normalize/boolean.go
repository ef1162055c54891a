package normalize

import (
	"regexp"
	"strings"
)

var (
	truthyWords = map[string]bool{"true": true, "1": true, "oui": true, "yes": true, "vrai": true, "ok": true}
	falsyWords  = map[string]bool{"false": true, "0": true, "non": true, "no": true, "faux": true}

	ouiPattern = regexp.MustCompile(`\boui\b`)
	nonPattern = regexp.MustCompile(`\bnon\b`)
)

// CoerceBool maps an open-typed value onto a boolean. Booleans pass through,
// numbers map to value != 0, and strings are matched against French and
// English truthy/falsy vocabulary ("oui merci" counts as true). ok is false
// when the value carries no recognizable polarity; callers drop the field in
// that case rather than guess.
func CoerceBool(v any) (value, ok bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case float64:
		return t != 0, true
	case int:
		return t != 0, true
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		s = strings.Trim(s, " \t\n\r\x00.,;:!?")
		if truthyWords[s] {
			return true, true
		}
		if falsyWords[s] {
			return false, true
		}
		if ouiPattern.MatchString(s) {
			return true, true
		}
		if nonPattern.MatchString(s) {
			return false, true
		}
	}
	return false, false
}
