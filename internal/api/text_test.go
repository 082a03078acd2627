package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    Text
		wantErr bool
	}{
		{"string", `{"v":"alice@test.com"}`, "alice@test.com", false},
		{"padded string stays padded", `{"v":" Alice"}`, " Alice", false},
		{"number keeps literal", `{"v":561234567}`, "561234567", false},
		{"fraction keeps literal", `{"v":1.5}`, "1.5", false},
		{"bool keeps literal", `{"v":true}`, "true", false},
		{"null", `{"v":null}`, "", false},
		{"missing", `{}`, "", false},
		{"object", `{"v":{"a":1}}`, "", true},
		{"array", `{"v":["a"]}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out struct {
				V Text `json:"v"`
			}
			err := json.Unmarshal([]byte(tt.in), &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.V)
		})
	}
}
