package pagenav

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	ErrInvalidRenderOptions = errors.New("invalid render options")

	_validate = validator.New(validator.WithRequiredStructEnabled())
)

// RenderOptions configures BuildNavigation. Start from DefaultRenderOptions,
// the zero value hides most of the controls.
type RenderOptions struct {
	// RouteName - name of the route the links point to. Used in the container id.
	RouteName string `json:"routeName"`
	// Class - class of the pager container.
	Class string `json:"class" validate:"required"`
	// PagesLeft - how many page links to show left of the current page.
	PagesLeft int `json:"pagesLeft" validate:"gte=0"`
	// PagesRight - how many page links to show right of the current page.
	PagesRight int `json:"pagesRight" validate:"gte=0"`
	// ShowFirstLast - show links to the first and the last page.
	ShowFirstLast bool `json:"showFirstLast"`
	// ShowPreviousNext - show links to the previous and the next page.
	ShowPreviousNext bool `json:"showPreviousNext"`
	// ShowDisplayAll - show a link to display all items at once, if allowed.
	ShowDisplayAll bool `json:"showDisplayAll"`
	// ShowStats - show item count, shown range and page position.
	ShowStats bool `json:"showStats"`
	// InstanceID - suffix for the container id to have several pagers on one page.
	InstanceID string `json:"instanceId,omitempty"`
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Class:            "general",
		PagesLeft:        3,
		PagesRight:       3,
		ShowFirstLast:    true,
		ShowPreviousNext: true,
		ShowDisplayAll:   true,
		ShowStats:        true,
	}
}

func (o RenderOptions) Validate() error {
	if err := _validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRenderOptions, err)
	}

	return nil
}

// ContainerID returns the id of the pager container, "pager-<route>" or
// "pager-<route>-<instance>".
func (o RenderOptions) ContainerID() string {
	return "pager-" + o.RouteName + lo.Ternary(o.InstanceID != "", "-"+o.InstanceID, "")
}

// LinkKind defines the role of a navigation link. Values match the classes
// used by the default markup.
type LinkKind string

const (
	LinkFirst    LinkKind = "first"
	LinkPrevious LinkKind = "prev-page"
	LinkPage     LinkKind = "page"
	LinkNext     LinkKind = "next-page"
	LinkLast     LinkKind = "last"
	// LinkShowAll points to ShowAllPage.
	LinkShowAll LinkKind = "show-all"
	// LinkShowFirstPage leaves show-all mode.
	LinkShowFirstPage LinkKind = "show-first-page"
)

// Link is a single navigation element. Building the URL for Page is up to
// the caller; ShowAllPage stands for the show-all request.
type Link struct {
	Kind LinkKind `json:"kind"`
	Page int      `json:"page"`
	// Current marks the link of the page being shown.
	Current bool `json:"current,omitempty"`
	// Disabled marks first/previous links on the first page and next/last
	// links on the last page. They are rendered without a target.
	Disabled bool `json:"disabled,omitempty"`
}

type Stats struct {
	Count     int `json:"count"`
	From      int `json:"from"`
	To        int `json:"to"`
	Page      int `json:"page"`
	PageCount int `json:"pageCount"`
	// ShowAll is nil unless showing all is enabled and allowed.
	ShowAll *Link `json:"showAll,omitempty"`
}

// Navigation holds everything a template needs to render pagination
// controls.
type Navigation struct {
	// Visible is false when there is nothing to paginate. Other fields are
	// empty in that case.
	Visible    bool   `json:"visible"`
	ID         string `json:"id,omitempty"`
	Class      string `json:"class,omitempty"`
	ShowingAll bool   `json:"showingAll,omitempty"`
	Count      int    `json:"count,omitempty"`
	Links      []Link `json:"links,omitempty"`
	Stats      *Stats `json:"stats,omitempty"`
}

// BuildNavigation builds pagination controls for state.
//
// Controls are visible only when there are items and either more than one
// page or show-all mode. In show-all mode a single link back to the first
// page is returned. Otherwise the links are, in order: first, previous, a
// window of pages around the current one, next, last.
func BuildNavigation(state PageState, opts RenderOptions) (*Navigation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	itemCount := state.GetItemCount()
	pageCount := state.GetPageCount()
	showingAll := state.IsShowingAll()

	if itemCount <= 0 || (!showingAll && pageCount <= 1) {
		return &Navigation{Visible: false}, nil
	}

	nav := &Navigation{
		Visible:    true,
		ID:         opts.ContainerID(),
		Class:      opts.Class,
		ShowingAll: showingAll,
		Count:      itemCount,
	}

	if showingAll {
		nav.Links = []Link{{Kind: LinkShowFirstPage, Page: 1}}
		return nav, nil
	}

	page := state.GetPage()
	isFirst := page == 1
	isLast := page == pageCount

	start, end := pageWindow(page, pageCount, opts.PagesLeft, opts.PagesRight)
	links := make([]Link, 0, end-start+5)

	if opts.ShowFirstLast {
		links = append(links, Link{Kind: LinkFirst, Page: 1, Disabled: isFirst})
	}
	if opts.ShowPreviousNext {
		links = append(links, Link{Kind: LinkPrevious, Page: max(page-1, 1), Disabled: isFirst})
	}

	for _, i := range lo.RangeFrom(start, end-start+1) {
		links = append(links, Link{Kind: LinkPage, Page: i, Current: i == page})
	}

	if opts.ShowPreviousNext {
		links = append(links, Link{Kind: LinkNext, Page: min(page+1, pageCount), Disabled: isLast})
	}
	if opts.ShowFirstLast {
		links = append(links, Link{Kind: LinkLast, Page: pageCount, Disabled: isLast})
	}

	nav.Links = links

	if opts.ShowStats {
		offset := state.GetOffset()
		nav.Stats = &Stats{
			Count:     itemCount,
			From:      offset + 1,
			To:        offset + min(state.GetItemsPerPage(), itemCount-offset),
			Page:      page,
			PageCount: pageCount,
		}

		if opts.ShowDisplayAll && state.IsShowAllAllowed() {
			nav.Stats.ShowAll = &Link{Kind: LinkShowAll, Page: ShowAllPage}
		}
	}

	return nav, nil
}

// pageWindow returns the first and the last page number to link to. Slots
// the current page cannot fill on one side are given to the other side, so
// the window keeps its width near the edges.
func pageWindow(page, pageCount, pagesLeft, pagesRight int) (int, int) {
	// No side can need more than pageCount slots.
	pagesLeft, pagesRight = min(pagesLeft, pageCount), min(pagesRight, pageCount)

	missingLeft := max(pagesLeft-page+1, 0)
	missingRight := max(pagesRight-(pageCount-page), 0)

	start := max(page-pagesLeft-missingRight, 1)
	end := min(page+pagesRight+missingLeft, pageCount)

	return start, end
}
