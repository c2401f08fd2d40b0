package models

// Pagination mirrors what the mobile clients already consume.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
	Limit         int  `json:"limit"`
}

func NewPagination(page, limit, total int) Pagination {

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Pagination{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   page*limit < total,
		HasPrevPage:   page > 1,
		Limit:         limit,
	}
}

// NormalizePage clamps bad pagination input instead of rejecting it.
func NormalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = defaultLimit
	}

	return page, limit
}
