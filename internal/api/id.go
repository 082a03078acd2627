package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID is a record id accepted either as a JSON number or a numeric string.
// Anything that is not a positive integer decodes to 0 so handlers can
// answer with their own "invalid id" message instead of a decode error.
type ID uint

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	*id = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil
	}
	*id = ID(n)
	return nil
}

// First returns the first non-zero id, or 0.
func First(ids ...ID) uint {
	for _, id := range ids {
		if id != 0 {
			return uint(id)
		}
	}
	return 0
}
