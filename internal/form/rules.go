package form

import (
	"regexp"
	"strings"
)

// Rule checks one field value and returns a user-visible message when the
// value is rejected, or "" when it passes.
type Rule func(value string) string

// Schema declares the rules for each field. Rules run in order; the first
// failing rule provides the field's message.
type Schema map[string][]Rule

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required rejects values that are empty after trimming.
func Required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Email rejects values that do not look like an address. Empty values
// pass, so combine with Required when the field is mandatory.
func Email(message string) Rule {
	return func(value string) string {
		if value != "" && !emailPattern.MatchString(value) {
			return message
		}
		return ""
	}
}
