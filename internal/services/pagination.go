package services

import (
	"context"
	"fmt"

	"github.com/undead-bacteria/ecommerce-api-men/domain"
)

// Counter counts records matching a filter. Every repository satisfies it.
type Counter interface {
	Count(ctx context.Context, filter domain.Filter) (int64, error)
}

// Paginate computes the pagination metadata for a list response. The count
// runs against the same filter as the page query, so the metadata is
// always consistent with the returned records.
func Paginate(ctx context.Context, counter Counter, filter domain.Filter, page, limit int64) (*domain.Pagination, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	total, err := counter.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	return &domain.Pagination{
		Page:         page,
		Limit:        limit,
		TotalRecords: total,
		TotalPages:   (total + limit - 1) / limit,
	}, nil
}
