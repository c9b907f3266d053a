package utils

// Paginate resolves a 1-based page request against a list of totalItems.
// Pages past the end clamp to the last available page instead of returning
// an empty slice; an empty list pins the page at 1. The returned start/end
// are half-open slice bounds.
func Paginate(totalItems, page, pageSize int) (clampedPage, totalPages, start, end int) {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	totalPages = (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	start = (page - 1) * pageSize
	end = start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return page, totalPages, start, end
}
