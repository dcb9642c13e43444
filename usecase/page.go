package usecase

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// NormalizePage clamps the 1-based page/limit pair and derives the skip
// offset: page p with limit n covers items [(p-1)*n, p*n).
func NormalizePage(page, limit int64) (int64, int64, int64) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit, (page - 1) * limit
}
