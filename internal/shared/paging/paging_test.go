package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		page, size              int
		wantPage, wantSize, off int
	}{
		{"defaults", 0, 0, 1, DefaultSize, 0},
		{"negative page", -4, 10, 1, 10, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"oversized", 3, 1000, 3, MaxSize, 200},
		{"one over max", 1, MaxSize + 1, 1, MaxSize, 0},
		{"max size kept", 1, MaxSize, 1, MaxSize, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, size, off := Normalize(tt.page, tt.size)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.off, off)
		})
	}
}
