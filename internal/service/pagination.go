package service

const defaultPageLimit = 20

// normalizePage clamps page and limit to sane bounds.
func normalizePage(page, limit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
