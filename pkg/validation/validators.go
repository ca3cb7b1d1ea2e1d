package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// emailShape narrows the RFC 5322 check to plain ASCII addresses with a
// dotted domain and an alphabetic TLD of at least two letters.
var emailShape = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

// Check reports whether a string value satisfies a rule.
type Check func(value string) bool

// Rule pairs a check with the message reported when it fails.
type Rule struct {
	Check   Check
	Message string
}

// MinLength fails when the value has fewer than n bytes.
func MinLength(n int, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return len(value) >= n },
		Message: message,
	}
}

// Required is MinLength(1).
func Required(message string) Rule {
	return MinLength(1, message)
}

// Email fails when the value is not a well-formed address. An empty value fails too.
func Email(message string) Rule {
	return Rule{
		Check:   isEmail,
		Message: message,
	}
}

func isEmail(value string) bool {
	if validate.Var(value, "required,email") != nil {
		return false
	}
	if strings.HasPrefix(value, ".") || strings.Contains(value, "..") {
		return false
	}
	return emailShape.MatchString(value)
}

// IsEmail is a convenience around the email rule for callers outside a schema.
func IsEmail(value string) bool {
	return Email("").Check(value)
}
