package api

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Text is a form field accepted either as a JSON string or as a bare scalar.
// A string is unquoted with its padding kept; a number or boolean keeps its
// literal form so validation reports on it; absent or null is "".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	case b[0] == '{' || b[0] == '[':
		return errors.New("text field must be a string or a number")
	default:
		*t = Text(b)
	}
	return nil
}
