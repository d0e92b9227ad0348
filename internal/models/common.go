package models

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"3"`
}

// NewPagination builds pagination metadata from a total count.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = total / limit
		if total%limit > 0 {
			totalPages++
		}
	}
	return Pagination{Page: page, Limit: limit, TotalItems: total, TotalPages: totalPages}
}

// MessageResponse is a generic acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}
