package dto

// Response is the standard success envelope for API endpoints
type Response struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// NewResponse creates a standard success response
func NewResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
	TotalPages  int   `json:"totalPages" example:"5"`
}

// PagedResponse is the success envelope for paginated list endpoints
type PagedResponse struct {
	Success    bool           `json:"success" example:"true"`
	Data       interface{}    `json:"data,omitempty"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewPagedResponse creates a paginated success response
func NewPagedResponse(data interface{}, pagination PaginationInfo) PagedResponse {
	return PagedResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	}
}
