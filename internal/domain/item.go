package domain

import "time"

// StockStatus enumerates derived stock levels.
type StockStatus string

const (
	StatusInStock    StockStatus = "In Stock"
	StatusLowStock   StockStatus = "Low Stock"
	StatusOutOfStock StockStatus = "Out of Stock"
)

// Thresholds for the quantity to status mapping.
const lowStockThreshold = 10

// StatusForQuantity maps a quantity to its stock status. Status is never
// stored independently of quantity; every create/update path recomputes
// it through this function.
func StatusForQuantity(quantity int) StockStatus {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= lowStockThreshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Item is an inventory record owned by exactly one user. OwnerID is
// immutable after creation.
type Item struct {
	ID        string
	OwnerID   string
	Name      string
	Quantity  int
	Category  string
	Status    StockStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
