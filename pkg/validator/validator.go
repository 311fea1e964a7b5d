package validator

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Korean landline and mobile numbers, digits only: 02-xxx-xxxx up to 010-xxxx-xxxx.
var phoneRegex = regexp.MustCompile(`^0[1-9][0-9]{7,9}$`)

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func normalizeCountryCode(digits string) string {
	if strings.HasPrefix(digits, "82") && len(digits) >= 11 {
		return "0" + digits[2:]
	}
	return digits
}

func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(normalizeCountryCode(digitsOnly(phone)))
}

// FormatPhone renders a valid number with dashes: 010-1234-5678, 02-123-4567.
// Invalid input is returned unchanged.
func FormatPhone(phone string) string {
	d := normalizeCountryCode(digitsOnly(phone))
	if !phoneRegex.MatchString(d) {
		return phone
	}

	if strings.HasPrefix(d, "02") {
		rest := d[2:]
		split := len(rest) - 4
		return "02-" + rest[:split] + "-" + rest[split:]
	}

	split := len(d) - 4
	return d[:3] + "-" + d[3:split] + "-" + d[split:]
}

func ValidateName(name string) bool {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 || utf8.RuneCountInString(name) > 50 {
		return false
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && r != '-' && r != ' ' && r != '\'' && r != '.' {
			return false
		}
	}

	return true
}

func SanitizeString(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s))
}
