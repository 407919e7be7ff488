package entity

// Pagination describes one page of a listing.
type Pagination struct {
	TotalRows   int `json:"total_rows"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}

func NewPagination(total, page, perPage int) Pagination {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}
	return Pagination{TotalRows: total, TotalPages: pages, CurrentPage: page, PerPage: perPage}
}

// Offset returns the number of rows to skip for page/perPage (both 1-based and positive).
func Offset(page, perPage int) int {
	return (page - 1) * perPage
}
