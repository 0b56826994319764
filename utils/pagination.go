package utils

import "github.com/gofiber/fiber/v2"

// Pagination describes the slice of a list response.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
}

// PageParams reads page/limit query parameters with sane bounds.
func PageParams(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset = (page - 1) * limit
	return page, limit, offset
}

// NewPagination builds the pagination envelope for a page of total records.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  pages,
		TotalCount:  total,
	}
}

// ListResponse writes the standard list envelope.
func ListResponse(c *fiber.Ctx, data interface{}, page, limit int, total int64) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": NewPagination(page, limit, total),
	})
}
