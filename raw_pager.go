package pagenav

import (
	"strconv"
	"strings"
)

// RawPager is intended for API payloads and query strings. For proper code
// generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPager `json:",inline"`
//	}
type RawPager struct {
	// Page - requested page number, or the show-all token.
	// If empty, the first page is returned.
	Page string `json:"page"`
	// ItemsPerPage - maximum number of records on a page.
	ItemsPerPage int `json:"itemsPerPage"`
}

// Decode returns the page number and page size to apply to a Pager.
// ItemsPerPage is normalized against MaxItemsPerPage and allToken is mapped
// to ShowAllPage.
func (r RawPager) Decode(allToken string) (page int, itemsPerPage int) {
	return ParsePage(r.Page, allToken), NormalizeItemsPerPageMax(r.ItemsPerPage, MaxItemsPerPage)
}

// ApplyRaw decodes the raw values into p. Returns p for chaining.
func ApplyRaw[T any](r RawPager, p *Pager[T], allToken string) *Pager[T] {
	page, itemsPerPage := r.Decode(allToken)

	// Page size first: show-all and clamping depend on it.
	return p.WithItemsPerPage(itemsPerPage).WithPage(page)
}

// ParsePage converts a raw page value into a page number:
//   - "" → DefaultPage;
//   - allToken (case-insensitive, when not empty) → ShowAllPage;
//   - an integer → that integer, left for Pager.WithPage to clamp;
//   - anything else → DefaultPage.
func ParsePage(raw string, allToken string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPage
	}

	if allToken != "" && strings.EqualFold(raw, allToken) {
		return ShowAllPage
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPage
	}

	return page
}
