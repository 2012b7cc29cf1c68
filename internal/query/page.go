package query

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller errors: unknown enum values, pages or
// sizes below 1. Wrapped errors carry the offending value.
var ErrInvalidInput = errors.New("invalid input")

// DefaultPageSize is the dashboard's fixed table page size.
const DefaultPageSize = 6

// Page is a 1-indexed page request.
type Page struct {
	Number int
	Size   int
}

// Window translates the page into a row window. The limit is the page
// size and the offset skips the preceding pages.
func (p Page) Window() (limit, offset int, err error) {
	if p.Number < 1 {
		return 0, 0, fmt.Errorf("%w: page number %d", ErrInvalidInput, p.Number)
	}
	if p.Size < 1 {
		return 0, 0, fmt.Errorf("%w: page size %d", ErrInvalidInput, p.Size)
	}
	return p.Size, (p.Number - 1) * p.Size, nil
}

// PageCount returns how many pages of the given size cover total rows.
func PageCount(total int64, size int) (int64, error) {
	if size < 1 {
		return 0, fmt.Errorf("%w: page size %d", ErrInvalidInput, size)
	}
	return (total + int64(size) - 1) / int64(size), nil
}
