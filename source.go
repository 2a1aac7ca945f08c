package pagenav

import (
	"slices"

	"github.com/samber/lo"
)

// DataSource is the collection a Pager paginates.
//
// Implementations return at most limit items starting at offset, fewer when
// the source is exhausted. Count and GetItems are expected to observe the same
// snapshot of data for the lifetime of a Pager.
type DataSource[T any] interface {
	Count() int
	GetItems(offset, limit int) []T
}

// SliceSource is an in-memory DataSource backed by a slice.
type SliceSource[T any] struct {
	items []T
}

func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{
		items: items,
	}
}

// Count - implements DataSource.
func (s *SliceSource[T]) Count() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// GetItems - implements DataSource. Returns a copy of items in
// [offset, offset+limit) clipped to the slice bounds.
func (s *SliceSource[T]) GetItems(offset, limit int) []T {
	if s == nil {
		return []T{}
	}

	offset = max(offset, 0)
	limit = max(limit, 0)

	// lo.Subset counts negative offsets from the end, offset is clamped above.
	return slices.Clone(lo.Subset(s.items, offset, uint(limit)))
}

var _ DataSource[any] = (*SliceSource[any])(nil)
