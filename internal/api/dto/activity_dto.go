package dto

import (
	"time"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// ActivityEntryResponse labels a record with its heuristic movement
// direction. The timestamp carries the record's last update.
type ActivityEntryResponse struct {
	ID        string              `json:"id"`
	Type      domain.ActivityType `json:"type"`
	ItemName  string              `json:"itemName"`
	Quantity  int                 `json:"quantity"`
	CreatedAt time.Time           `json:"createdAt"`
}

// StatsResponse summarizes an owner's inventory counts.
type StatsResponse struct {
	TotalItems    int64 `json:"totalItems"`
	LowStockItems int64 `json:"lowStockItems"`
}

// TopItemResponse is the trimmed item view inside analytics.
type TopItemResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Quantity int                `json:"quantity"`
	Status   domain.StockStatus `json:"status"`
}

// AnalyticsResponse is the full analytics summary.
type AnalyticsResponse struct {
	Overview struct {
		TotalValue int64 `json:"totalValue"`
		ItemsSold  int64 `json:"itemsSold"`
	} `json:"overview"`
	TopPerforming []TopItemResponse `json:"topPerforming"`
	Health        struct {
		LowStock   int64 `json:"lowStock"`
		OutOfStock int64 `json:"outOfStock"`
		InStock    int64 `json:"inStock"`
	} `json:"health"`
}

// ActivityToResponse maps computed activity entries.
func ActivityToResponse(entries []domain.ActivityEntry) []ActivityEntryResponse {
	result := make([]ActivityEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, ActivityEntryResponse{
			ID:        entry.ItemID,
			Type:      entry.Type,
			ItemName:  entry.ItemName,
			Quantity:  entry.Quantity,
			CreatedAt: entry.Timestamp,
		})
	}
	return result
}

// AnalyticsToResponse maps the domain analytics view.
func AnalyticsToResponse(analytics *domain.Analytics) AnalyticsResponse {
	var resp AnalyticsResponse
	resp.Overview.TotalValue = analytics.Overview.TotalValue
	resp.Overview.ItemsSold = analytics.Overview.ItemsSold
	resp.TopPerforming = make([]TopItemResponse, 0, len(analytics.TopPerforming))
	for i := range analytics.TopPerforming {
		item := &analytics.TopPerforming[i]
		resp.TopPerforming = append(resp.TopPerforming, TopItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Status:   item.Status,
		})
	}
	resp.Health.LowStock = analytics.Health.LowStock
	resp.Health.OutOfStock = analytics.Health.OutOfStock
	resp.Health.InStock = analytics.Health.InStock
	return resp
}
