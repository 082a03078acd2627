// Package paging normalizes page/size parameters of listing endpoints.
package paging

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Normalize clamps page to >= 1 and size to MaxSize. A size <= 0 becomes DefaultSize.
// It returns the normalized values and the row offset.
func Normalize(page, size int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case size <= 0:
		size = DefaultSize
	case size > MaxSize:
		size = MaxSize
	}
	return page, size, (page - 1) * size
}
