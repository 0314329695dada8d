package response

import "vinyl-record-house/internal/usecase/queries"

// Page wraps a keyset-paginated list; NextCursor is empty on the last page.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func NewPage[T any](items []T, next *queries.Cursor) Page[T] {
	p := Page[T]{Items: items}
	if next != nil {
		p.NextCursor = next.After
	}
	return p
}
