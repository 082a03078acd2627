// Package validation provides a declarative, table-driven field validator.
// A Schema is an ordered list of field rules; each rule is a list of checks
// (predicate + code + message). Resources describe their constraints as data
// and share the same evaluation logic.
package validation

import (
	"strings"
)

// Code classifies why a field was rejected.
type Code string

const (
	CodeRequired      Code = "required"
	CodeWhitespace    Code = "leading_or_trailing_whitespace"
	CodeInvalidFormat Code = "invalid_format"
	CodeInvalidEnum   Code = "invalid_enum_value"
	CodeOutOfRange    Code = "out_of_range"
	CodeNotANumber    Code = "not_a_number"
)

// UnknownFieldMessage is returned by ValidateField for fields the schema does not declare.
const UnknownFieldMessage = "Unknown field"

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Code    Code   `json:"type"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// Errors is the list of field errors of one submission. It implements error.
type Errors []FieldError

// Error joins all messages with ", ".
func (e Errors) Error() string {
	return strings.Join(e.Messages(), ", ")
}

// Messages returns the messages in schema order.
func (e Errors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Message)
	}
	return out
}

// Fields returns the names of the rejected fields in schema order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, fe := range e {
		out = append(out, fe.Field)
	}
	return out
}

// Has reports whether field was rejected.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Message returns the message reported for field, or "".
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Check is one predicate of a field rule.
type Check struct {
	Code    Code
	Message string
	Valid   func(value string) bool
}

// FieldRule is the ordered list of checks for one field.
type FieldRule struct {
	Field  string
	Checks []Check
}

// Schema is an ordered rule table.
type Schema struct {
	rules []FieldRule
}

// NewSchema builds a schema from rules. Field order is preserved in reports.
func NewSchema(rules ...FieldRule) Schema {
	return Schema{rules: rules}
}

// Field creates a FieldRule.
func Field(name string, checks ...Check) FieldRule {
	return FieldRule{Field: name, Checks: checks}
}

// FieldNames returns the declared fields in order.
func (s Schema) FieldNames() []string {
	out := make([]string, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r.Field)
	}
	return out
}

// Validate checks every declared field and collects one error per failing field.
// Missing keys are validated as empty strings.
func (s Schema) Validate(values map[string]string) Errors {
	var errs Errors
	for _, r := range s.rules {
		v := values[r.Field]
		if c, ok := firstFailure(r, v); ok {
			errs = append(errs, FieldError{Field: r.Field, Code: c.Code, Message: c.Message, Value: v})
		}
	}
	return errs
}

// ValidateField runs the rules of a single field and returns at most one message.
// An empty string means the value is valid.
func (s Schema) ValidateField(field, value string) string {
	for _, r := range s.rules {
		if r.Field != field {
			continue
		}
		if c, ok := firstFailure(r, value); ok {
			return c.Message
		}
		return ""
	}
	return UnknownFieldMessage
}

func firstFailure(r FieldRule, v string) (Check, bool) {
	for _, c := range r.Checks {
		if !c.Valid(v) {
			return c, true
		}
	}
	return Check{}, false
}
