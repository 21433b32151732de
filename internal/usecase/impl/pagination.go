// Package impl contains the implementation of the application's business logic.
package impl

const (
	defaultPage  = 1
	defaultLimit = 10
)

// normalizePage falls back to the defaults for out-of-range values and returns
// the row offset as (page - 1) * limit.
func normalizePage(page, limit int) (offset, normalizedLimit int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	return (page - 1) * limit, limit
}
