package utils

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams is a 1-based page of at most Limit rows.
type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ParsePagination reads ?page= and ?limit=, ignoring values that are not integers.
func ParsePagination(c *fiber.Ctx) PaginationParams {
	return NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", DefaultPageSize))
}

func NewPagination(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return PaginationParams{Page: page, Limit: limit}
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate is a gorm scope: db.Scopes(p.Paginate).Find(&rows).
func (p PaginationParams) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset()).Limit(p.Limit)
}
