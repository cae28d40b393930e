package model

// Paging describes the position of a page within a result set
type Paging struct {
	CurrentPage int `json:"current_page"` // Page echoed from the request
	TotalPage   int `json:"total_page"`   // ceil(total matching rows / size)
	Size        int `json:"size"`         // Page size echoed from the request
}

// Pageable wraps one page of data together with its paging metadata
type Pageable[T any] struct {
	Data   []T    `json:"data"`   // Rows for the current page
	Paging Paging `json:"paging"` // Paging metadata
}
