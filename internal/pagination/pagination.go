// Package pagination computes page counts and row offsets for fixed-size
// result pages.
package pagination

// PageSize is the number of rows per page, shared by every paginated query
// in the system. The same constant must bound both the page-count query and
// the row-fetching query, or the two disagree.
const PageSize = 6

// PageCount returns ceil(matchCount / pageSize): the number of pages the
// matching rows span. Zero matches yield zero pages.
func PageCount(matchCount, pageSize int) int {
	if matchCount <= 0 {
		return 0
	}
	return (matchCount + pageSize - 1) / pageSize
}

// Offset returns the row offset of the given 1-based page.
//
// Precondition: page >= 1. The paginator does not clamp; callers must reject
// or clamp out-of-range pages before computing an offset.
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
