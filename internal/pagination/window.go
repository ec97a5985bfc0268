// Package pagination computes page windows and offset/limit pairs for
// listing endpoints that render numbered page navigation.
package pagination

import "math"

const (
	// DefaultSize is the rows-per-page floor and default.
	DefaultSize = 10
	// DefaultPageCount is how many page numbers one navigation window shows.
	DefaultPageCount = 10
)

// Defaults holds the configurable fallbacks used when a caller supplies
// out-of-range values.
type Defaults struct {
	Size      int
	PageCount int
}

// Request carries the raw page inputs of a listing call.
type Request struct {
	Page int `form:"page" json:"page"`
	Size int `form:"size" json:"size"`
}

// Window is the navigation state of one listing response.
type Window struct {
	Page           int  `json:"page"`
	Size           int  `json:"size"`
	PageCount      int  `json:"pageCount"`
	Prev           bool `json:"prev"`
	Next           bool `json:"next"`
	TotalPageCount int  `json:"totalPageCount"`
	StartPage      int  `json:"startPage"`
	EndPage        int  `json:"endPage"`
	TotalRowCount  int  `json:"totalRowCount"`
}

// Pages returns the page numbers from StartPage to EndPage inclusive.
func (w Window) Pages() []int {
	if w.StartPage < 1 || w.EndPage < w.StartPage {
		return nil
	}
	pages := make([]int, 0, w.EndPage-w.StartPage+1)
	for p := w.StartPage; p <= w.EndPage; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Calculator normalizes page inputs and derives windows from them.
// It holds no mutable state and is safe for concurrent use. The zero value
// uses DefaultSize and DefaultPageCount.
type Calculator struct {
	defaults Defaults
}

// NewCalculator returns a Calculator using d. Non-positive fields fall
// back to DefaultSize and DefaultPageCount.
func NewCalculator(d Defaults) Calculator {
	return Calculator{defaults: d}
}

// DefaultCalculator returns a Calculator with the package defaults.
func DefaultCalculator() Calculator {
	return NewCalculator(Defaults{})
}

// Defaults reports the fallbacks in effect.
func (c Calculator) Defaults() Defaults {
	return c.normalized()
}

func (c Calculator) normalized() Defaults {
	d := c.defaults
	if d.Size <= 0 {
		d.Size = DefaultSize
	}
	if d.PageCount <= 0 {
		d.PageCount = DefaultPageCount
	}
	return d
}

func (c Calculator) page(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// size floors the requested size at the default, so a request for 5 rows
// is served 10 rows per page.
func (c Calculator) size(size int) int {
	if d := c.normalized().Size; size < d {
		return d
	}
	return size
}

func (c Calculator) pageCount(pageCount int) int {
	if pageCount <= 0 {
		return c.normalized().PageCount
	}
	return pageCount
}

// Normalize returns r with page and size clamped the same way
// ComputeOffsetLimit and ComputeWindow clamp them.
func (r Request) Normalize(c Calculator) Request {
	return Request{Page: c.page(r.Page), Size: c.size(r.Size)}
}

// ComputeOffsetLimit returns the zero-based row offset and the row limit
// for page. The offset is derived from the floored limit, not from the
// raw size. Pages whose offset would overflow int saturate at the largest
// whole-page offset, so the offset is never negative.
func (c Calculator) ComputeOffsetLimit(page, size int) (offset, limit int) {
	limit = c.size(size)
	page = c.page(page)
	if page-1 > math.MaxInt/limit {
		page = math.MaxInt/limit + 1
	}
	return (page - 1) * limit, limit
}

// ComputeWindow derives the navigation window for page given the number of
// rows matching the query. Inputs are normalized, never rejected.
func (c Calculator) ComputeWindow(page, size, pageCount, totalRowCount int) Window {
	page = c.page(page)
	size = c.size(size)
	pageCount = c.pageCount(pageCount)
	if totalRowCount < 0 {
		totalRowCount = 0
	}

	// Integer division truncates toward zero, so (0-1)/size would give 0
	// instead of -1; an empty result set still has one page.
	totalPageCount := 1
	if totalRowCount > 0 {
		totalPageCount = (totalRowCount-1)/size + 1
	}

	// A page past the end is windowed as the last page so the bounds stay ordered.
	current := page
	if current > totalPageCount {
		current = totalPageCount
	}

	startPage := (current-1)/pageCount*pageCount + 1
	endPage := min(((current-1)/pageCount+1)*pageCount, totalPageCount)

	return Window{
		Page:           page,
		Size:           size,
		PageCount:      pageCount,
		Prev:           startPage != 1,
		Next:           endPage != totalPageCount,
		TotalPageCount: totalPageCount,
		StartPage:      startPage,
		EndPage:        endPage,
		TotalRowCount:  totalRowCount,
	}
}
