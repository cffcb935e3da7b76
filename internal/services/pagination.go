package services

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination переводит page/limit из query в offset/limit для БД
func Pagination(page, limit int) (offset, normalized int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}
