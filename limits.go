package pagenav

const (
	DefaultItemsPerPage = 10
	MinItemsPerPage     = 1
	MaxItemsPerPage     = 100

	DefaultPage = 1
	// ShowAllPage is the page number that requests every item on one page.
	ShowAllPage = 0

	DefaultShowAllMaximumItemCount = 500
	ShowAllAlways                  = -1
	ShowAllNever                   = 0
)

// NormalizeItemsPerPage clamps the page size to MinItemsPerPage.
func NormalizeItemsPerPage(itemsPerPage int) int {
	return max(itemsPerPage, MinItemsPerPage)
}

// IsNormalizedItemsPerPageMax reports the page size to use for externally
// supplied values along with whether the input was used unchanged.
func IsNormalizedItemsPerPageMax(itemsPerPage int, maxItemsPerPage int) (int, bool) {
	if itemsPerPage <= 0 {
		return DefaultItemsPerPage, false
	} else if itemsPerPage > maxItemsPerPage {
		return maxItemsPerPage, false
	}

	return itemsPerPage, true
}

func NormalizeItemsPerPageMax(itemsPerPage int, maxItemsPerPage int) int {
	ret, _ := IsNormalizedItemsPerPageMax(itemsPerPage, maxItemsPerPage)
	return ret
}
