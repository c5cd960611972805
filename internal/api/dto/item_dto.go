package dto

import (
	"time"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// CreateItemRequest payload. Status is intentionally absent: it is
// derived from quantity and never client-supplied.
type CreateItemRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
}

// UpdateItemRequest carries a partial update; omitted fields are left
// untouched.
type UpdateItemRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Category *string `json:"category"`
}

// ItemResponse is the wire representation of an inventory record.
type ItemResponse struct {
	ID        string             `json:"id"`
	OwnerID   string             `json:"userId"`
	Name      string             `json:"name"`
	Quantity  int                `json:"quantity"`
	Category  string             `json:"category"`
	Status    domain.StockStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ItemToResponse maps a domain item.
func ItemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Category:  item.Category,
		Status:    item.Status,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// ItemsToResponse maps a slice of domain items.
func ItemsToResponse(items []domain.Item) []ItemResponse {
	result := make([]ItemResponse, 0, len(items))
	for i := range items {
		result = append(result, ItemToResponse(&items[i]))
	}
	return result
}
