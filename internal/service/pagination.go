package service

import (
	"github.com/stockflow/inventory-api/internal/domain"
	"github.com/stockflow/inventory-api/internal/repository"
)

// paginate builds a paginated response envelope. Page parameters are
// clamped the same way the repositories clamp them so the metadata
// matches the query that actually ran.
func paginate(data interface{}, total int64, page, pageSize int) *domain.PaginatedResponse {
	page, pageSize = repository.NormalizePage(page, pageSize)

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &domain.PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
