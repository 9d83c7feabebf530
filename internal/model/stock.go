package model

import "time"

// StockItem is an inventory line (cleaning supplies, spare parts, furniture).
type StockItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required,max=200"`
	SKU          string    `json:"sku" validate:"required,max=64"`
	Category     string    `json:"category,omitempty" validate:"max=100"`
	Quantity     int       `json:"quantity" validate:"min=0"`
	UnitCost     float64   `json:"unit_cost" validate:"gte=0"`
	ReorderLevel int       `json:"reorder_level" validate:"min=0"`
	Location     string    `json:"location,omitempty" validate:"max=200"`
	LowStock     bool      `json:"low_stock"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshLowStock recomputes the derived LowStock flag.
func (s *StockItem) RefreshLowStock() {
	s.LowStock = s.Quantity <= s.ReorderLevel
}

// StockAdjustment is a signed quantity change with a reason for the audit log.
type StockAdjustment struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"max=200"`
}
