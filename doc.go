package pagenav

// Package pagenav provides page/offset pagination primitives and the data
// needed to render pagination controls.
//
// Overview
//
// pagenav splits a dataset into 1-indexed pages of a fixed size:
//   - Pager: holds a DataSource, a page size and a requested page, and derives
//     the page count, the effective page, the offset and the items on it.
//   - DataSource: count + slice capability. SliceSource wraps an in-memory
//     slice, GORMSource wraps a GORM query.
//
// Key concepts
//   - Show-all: requesting page 0 returns every item on a single page when the
//     item count does not exceed the configured maximum.
//   - Navigation: BuildNavigation turns a Pager and RenderOptions into links,
//     stats and container attributes for a template to render.
//   - Fingerprint: Pager.String() identifies the pager state and is used as a
//     cache key component by NavigationCache.
//
// See examples/ for runnable usage.
