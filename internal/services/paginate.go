package services

// PageSize is the fixed number of questions per page.
const PageSize = 10

// Paginate slices items down to the 1-based page p. Pages past the end
// of the data (and pages below 1) come back empty; callers decide
// whether an empty page is an error.
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
