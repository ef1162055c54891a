package normalize

import (
	"log"
	"regexp"
	"strings"
)

var (
	phoneSeparators = regexp.MustCompile(`[\s.\-()]`)
	phoneNonDigits  = regexp.MustCompile(`[^0-9+]`)
	phonePattern    = regexp.MustCompile(`^(\+33|0)[0-9]{9,}$`)

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	postalNonDigits = regexp.MustCompile(`[^0-9]`)
	postalPattern   = regexp.MustCompile(`^\d{5}$`)
)

// NormalizePhone strips separators from a French phone number and validates
// the 0/+33 national format. Invalid numbers yield "".
func NormalizePhone(phone string) string {
	normalized := phoneSeparators.ReplaceAllString(phone, "")
	normalized = phoneNonDigits.ReplaceAllString(normalized, "")
	if phonePattern.MatchString(normalized) {
		return normalized
	}
	log.Printf("normalize: invalid phone number %q", phone)
	return ""
}

// NormalizeEmail lowercases and validates an email address. Invalid
// addresses yield "".
func NormalizeEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if emailPattern.MatchString(normalized) {
		return normalized
	}
	log.Printf("normalize: invalid email %q", email)
	return ""
}

// NormalizePostalCode strips non-digits and validates the five-digit French
// postal format. Invalid codes yield "".
func NormalizePostalCode(code string) string {
	normalized := postalNonDigits.ReplaceAllString(strings.TrimSpace(code), "")
	if postalPattern.MatchString(normalized) {
		return normalized
	}
	log.Printf("normalize: invalid postal code %q", code)
	return ""
}

// ValidEmail reports whether s is a syntactically plausible email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
