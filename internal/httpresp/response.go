package httpresp

import "github.com/gin-gonic/gin"

type PaginationInfo struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

type PaginatedResponse[T any] struct {
	Info PaginationInfo `json:"info"`
	Data []T            `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(201, data)
}

// Paginated wraps a page of items in the standard list envelope.
func Paginated[T any](c *gin.Context, data []T, skip, limit int, total int64) {
	page := 1
	totalPages := int64(1)
	if limit > 0 {
		page = (skip / limit) + 1
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	c.JSON(200, PaginatedResponse[T]{
		Info: PaginationInfo{
			Page:       page,
			PerPage:    limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Data: data,
	})
}
