package domain

import "time"

// ActivityType is the heuristic movement direction derived from the
// current stock status of a record, not from a transaction ledger.
type ActivityType string

const (
	ActivityIn  ActivityType = "in"
	ActivityOut ActivityType = "out"
)

// ActivityEntry is a computed view over an inventory record.
type ActivityEntry struct {
	ItemID    string
	Type      ActivityType
	ItemName  string
	Quantity  int
	Timestamp time.Time
}

// ActivityForItem labels a record as an outbound movement when it is out
// of stock and inbound otherwise. The timestamp is the record's last
// update, since there is no event history to consult.
func ActivityForItem(item *Item) ActivityEntry {
	entryType := ActivityIn
	if item.Status == StatusOutOfStock {
		entryType = ActivityOut
	}
	return ActivityEntry{
		ItemID:    item.ID,
		Type:      entryType,
		ItemName:  item.Name,
		Quantity:  item.Quantity,
		Timestamp: item.UpdatedAt,
	}
}

// Stats summarizes an owner's inventory counts.
type Stats struct {
	TotalItems    int64
	LowStockItems int64
}

// InventoryHealth breaks item counts down by stock status.
type InventoryHealth struct {
	LowStock   int64
	OutOfStock int64
	InStock    int64
}

// AnalyticsOverview carries aggregate proxies: TotalValue is the sum of
// quantities across all records, ItemsSold the count of records
// currently out of stock.
type AnalyticsOverview struct {
	TotalValue int64
	ItemsSold  int64
}

// Analytics is the full analytics view for one owner.
type Analytics struct {
	Overview      AnalyticsOverview
	TopPerforming []Item
	Health        InventoryHealth
}
