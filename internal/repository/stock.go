package repository

import (
	"context"

	"propdesk/internal/model"
)

// StockFilter narrows stock listings.
type StockFilter struct {
	Category string
	Query    string
	LowStock bool
}

// StockRepository persists inventory items.
type StockRepository interface {
	Create(ctx context.Context, s *model.StockItem) (*model.StockItem, error)
	FindByID(ctx context.Context, id string) (*model.StockItem, error)
	List(ctx context.Context, f StockFilter, pq PageQuery) (*PageResult[model.StockItem], error)
	Update(ctx context.Context, s *model.StockItem) (*model.StockItem, error)
	Delete(ctx context.Context, id string) error

	// AdjustQuantity applies delta in a single statement and returns the updated item.
	// It returns ErrInsufficientStock when the result would be negative.
	AdjustQuantity(ctx context.Context, id string, delta int) (*model.StockItem, error)
}
