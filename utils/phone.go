package utils

import "strings"

// NormalizePhone formats a free-form phone number into an international
// form for the SMS transport. This is a best-effort heuristic, not
// validated E.164 parsing:
//   - numbers already prefixed with "+" pass through unchanged
//   - digits starting with the default country calling code get a "+"
//   - exactly 10 digits are treated as domestic and get "+<countryCode>"
//   - exactly 12 digits get a "+"
//   - anything else gets a "+" as a fallback
func NormalizePhone(raw, countryCode string) string {
	if strings.HasPrefix(raw, "+") {
		return raw
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, countryCode):
		return "+" + digits
	case len(digits) == 10:
		return "+" + countryCode + digits
	case len(digits) == 12:
		return "+" + digits
	default:
		return "+" + digits
	}
}
