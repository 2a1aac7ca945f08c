package pagenav

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

var (
	ErrUnsupportedDataType = errors.New("given data type is not supported")
	ErrSourceNotSet        = errors.New("unable to count items, source has not been set")
)

// PageState is the read side of a Pager, as consumed by BuildNavigation and
// NavigationCache.
type PageState interface {
	fmt.Stringer

	GetPage() int
	GetItemsPerPage() int
	GetItemCount() int
	GetPageCount() int
	GetOffset() int
	IsShowingAll() bool
	IsShowAllAllowed() bool
}

// Pager splits a DataSource into pages of GetItemsPerPage items.
//
// The requested page is stored as given and clamped on read, so GetPage never
// exceeds GetPageCount. Requesting ShowAllPage switches the pager into
// show-all mode when IsShowAllAllowed permits it.
//
// A Pager is meant to live for a single request and is not safe for
// concurrent use.
type Pager[T any] struct {
	data                    any
	source                  DataSource[T]
	itemsPerPage            int
	page                    int
	showAllMaximumItemCount int
	showAll                 bool
}

// NewPager returns a pager with default settings and no source.
func NewPager[T any]() *Pager[T] {
	return &Pager[T]{
		itemsPerPage:            DefaultItemsPerPage,
		page:                    DefaultPage,
		showAllMaximumItemCount: DefaultShowAllMaximumItemCount,
	}
}

// New returns a pager over data positioned at page. A nil data leaves the
// source unset; see SetData for the accepted types.
func New[T any](data any, page int) (*Pager[T], error) {
	p := NewPager[T]()

	if data != nil {
		if err := p.SetData(data); err != nil {
			return nil, err
		}
	}

	if page != DefaultPage {
		p.WithPage(page)
	}

	return p, nil
}

// WithItemsPerPage sets the page size. Values below MinItemsPerPage are
// raised to it.
func (p *Pager[T]) WithItemsPerPage(itemsPerPage int) *Pager[T] {
	if p == nil {
		p = NewPager[T]()
	}

	p.itemsPerPage = NormalizeItemsPerPage(itemsPerPage)

	return p
}

func (p *Pager[T]) GetItemsPerPage() int {
	if p == nil {
		return DefaultItemsPerPage
	}

	return p.itemsPerPage
}

// WithShowAllMaximumItemCount sets the largest item count for which show-all
// is allowed. ShowAllAlways always allows it, ShowAllNever never does.
func (p *Pager[T]) WithShowAllMaximumItemCount(itemCount int) *Pager[T] {
	if p == nil {
		p = NewPager[T]()
	}

	p.showAllMaximumItemCount = itemCount

	return p
}

func (p *Pager[T]) GetShowAllMaximumItemCount() int {
	if p == nil {
		return DefaultShowAllMaximumItemCount
	}

	return p.showAllMaximumItemCount
}

// IsShowAllAllowed reports whether all items may be shown on a single page.
// The source is only queried for a positive maximum item count.
func (p *Pager[T]) IsShowAllAllowed() bool {
	if p == nil {
		return false
	}

	switch p.showAllMaximumItemCount {
	case ShowAllAlways:
		return true
	case ShowAllNever:
		return false
	}

	return p.GetItemCount() <= p.showAllMaximumItemCount
}

// SetData sets the data to paginate. Accepted types are:
//   - DataSource[T], used as is;
//   - []T, wrapped into SliceSource;
//   - *gorm.DB, wrapped into GORMSource.
//
// Any other type returns ErrUnsupportedDataType. Unlike WithSource, the
// requested page is not re-applied.
func (p *Pager[T]) SetData(data any) error {
	if p == nil {
		return fmt.Errorf("cannot set data: pager is nil")
	}

	switch v := data.(type) {
	case DataSource[T]:
		p.source = v
	case []T:
		p.source = NewSliceSource(v)
	case *gorm.DB:
		p.source = NewGORMSource[T](v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedDataType, data)
	}

	p.data = data

	return nil
}

// GetData returns the data exactly as passed to SetData.
func (p *Pager[T]) GetData() any {
	if p == nil {
		return nil
	}

	return p.data
}

// WithSource binds a source and re-applies the current page against it. If
// the new source has fewer pages, the page moves to the last one.
func (p *Pager[T]) WithSource(source DataSource[T]) *Pager[T] {
	if p == nil {
		p = NewPager[T]()
	}

	p.source = source

	return p.WithPage(p.GetPage())
}

func (p *Pager[T]) GetSource() DataSource[T] {
	if p == nil {
		return nil
	}

	return p.source
}

// GetItemCount returns the number of items in the source, 0 if no source has
// been set. See Count for the erroring variant.
func (p *Pager[T]) GetItemCount() int {
	if p == nil || p.source == nil {
		return 0
	}

	return p.source.Count()
}

// GetPageCount returns the number of pages needed to show all items.
func (p *Pager[T]) GetPageCount() int {
	itemCount, itemsPerPage := p.GetItemCount(), p.GetItemsPerPage()

	return itemCount/itemsPerPage + lo.Ternary(itemCount%itemsPerPage != 0, 1, 0)
}

// WithPage sets the requested page. ShowAllPage enables show-all mode when it
// is allowed, any other value below 1 becomes 1. Values above the page count
// are kept and clamped by GetPage. A later call with any page other than
// ShowAllPage leaves show-all mode.
func (p *Pager[T]) WithPage(page int) *Pager[T] {
	if p == nil {
		p = NewPager[T]()
	}

	p.page = page
	p.showAll = false

	if p.page == ShowAllPage && p.IsShowAllAllowed() {
		p.showAll = true
	} else if p.page < 1 {
		p.page = 1
	}

	return p
}

// GetPage returns the effective page: the requested page clamped to the page
// count. Returns 0 when there are no items.
func (p *Pager[T]) GetPage() int {
	if p == nil {
		return 0
	}

	return min(p.page, p.GetPageCount())
}

func (p *Pager[T]) IsShowingAll() bool {
	return p != nil && p.showAll
}

// GetOffset returns the index of the first item on the effective page.
func (p *Pager[T]) GetOffset() int {
	return max((p.GetPage()-1)*p.GetItemsPerPage(), 0)
}

// GetItemsOnPage returns the items on the effective page, or every item when
// showing all. Returns nil if no source has been set.
func (p *Pager[T]) GetItemsOnPage() []T {
	if p == nil || p.source == nil {
		return nil
	}

	if p.IsShowingAll() {
		return p.source.GetItems(0, p.source.Count())
	}

	return p.source.GetItems(p.GetOffset(), p.itemsPerPage)
}

// GetItemsOnPageNumber sets the requested page and returns its items.
func (p *Pager[T]) GetItemsOnPageNumber(page int) []T {
	return p.WithPage(page).GetItemsOnPage()
}

// Items returns the items on the current page as a sequence. Every range over
// it fetches the page from the source again.
func (p *Pager[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range p.GetItemsOnPage() {
			if !yield(item) {
				return
			}
		}
	}
}

// Count returns the number of items in the source.
//
// IMPORTANT:
// Unlike GetItemCount, Count fails with ErrSourceNotSet when no source has
// been set. Both behaviours are relied upon by callers.
func (p *Pager[T]) Count() (int, error) {
	if p == nil || p.source == nil {
		return 0, ErrSourceNotSet
	}

	return p.source.Count(), nil
}

// String - implements fmt.Stringer. Returns a fingerprint that is equal for
// pagers with the same requested page, page size, show-all maximum and item
// count.
func (p *Pager[T]) String() string {
	if p == nil {
		return ""
	}

	return fingerprint(p.page, p.itemsPerPage, p.showAllMaximumItemCount, p.GetItemCount())
}

// fingerprint joins the values with dots, e.g. "3.10.500.95".
func fingerprint(values ...int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	}), ".")
}

var (
	_ PageState    = (*Pager[any])(nil)
	_ fmt.Stringer = (*Pager[any])(nil)
)
