package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Required rejects values that are empty after trimming.
func Required(msg string) Check {
	return Check{
		Code:    CodeRequired,
		Message: msg,
		Valid:   func(v string) bool { return strings.TrimSpace(v) != "" },
	}
}

// NoSurroundingSpace rejects padded input instead of trimming it silently.
func NoSurroundingSpace(msg string) Check {
	return Check{
		Code:    CodeWhitespace,
		Message: msg,
		Valid:   func(v string) bool { return v == strings.TrimSpace(v) },
	}
}

// Email accepts a local@domain address.
func Email(msg string) Check {
	return Check{
		Code:    CodeInvalidFormat,
		Message: msg,
		Valid:   func(v string) bool { return validate.Var(v, "required,email") == nil },
	}
}

// Digits accepts ASCII digits only.
func Digits(msg string) Check {
	return Check{
		Code:    CodeInvalidFormat,
		Message: msg,
		Valid: func(v string) bool {
			if v == "" {
				return false
			}
			for i := 0; i < len(v); i++ {
				if v[i] < '0' || v[i] > '9' {
					return false
				}
			}
			return true
		},
	}
}

// Pattern accepts values matching re.
func Pattern(re *regexp.Regexp, msg string) Check {
	return Check{
		Code:    CodeInvalidFormat,
		Message: msg,
		Valid:   re.MatchString,
	}
}

// OneOf accepts members of the declared set (exact match).
func OneOf(values []string, msg string) Check {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return Check{
		Code:    CodeInvalidEnum,
		Message: msg,
		Valid: func(v string) bool {
			_, ok := set[v]
			return ok
		},
	}
}

// Integer accepts base-10 integers.
func Integer(msg string) Check {
	return Check{
		Code:    CodeNotANumber,
		Message: msg,
		Valid: func(v string) bool {
			_, err := strconv.Atoi(v)
			return err == nil
		},
	}
}

// AtLeast accepts integers >= min. Non-integers are left to Integer.
func AtLeast(min int, msg string) Check {
	return Check{
		Code:    CodeOutOfRange,
		Message: msg,
		Valid: func(v string) bool {
			n, err := strconv.Atoi(v)
			return err == nil && n >= min
		},
	}
}
