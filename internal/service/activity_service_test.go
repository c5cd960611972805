package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/inventory-service/internal/domain"
)

func seedInventory(t *testing.T, repo *mockItemRepo) *InventoryService {
	t.Helper()
	svc := newInventoryService(repo)

	seeds := []ItemCreateInput{
		{Name: "Hammer", Quantity: 50, Category: "Tools"},
		{Name: "Screws", Quantity: 8, Category: "Fasteners"},
		{Name: "Glue", Quantity: 0, Category: "Adhesives"},
		{Name: "Tape", Quantity: 3, Category: "Adhesives"},
	}
	for _, seed := range seeds {
		_, err := svc.Create(context.Background(), "owner-1", seed)
		require.NoError(t, err)
	}
	// Another tenant's records must never bleed into owner-1's views.
	_, err := svc.Create(context.Background(), "owner-2", ItemCreateInput{
		Name: "Foreign", Quantity: 999, Category: "Other",
	})
	require.NoError(t, err)
	return svc
}

func TestRecentActivityLimitAndMapping(t *testing.T) {
	t.Parallel()

	repo := newMockItemRepo()
	seedInventory(t, repo)
	svc := NewActivityService(repo, nil)

	entries, err := svc.RecentActivity(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, entries, 3, "recent activity is capped at 3 entries")

	// Most recently touched first: Tape, Glue, Screws.
	assert.Equal(t, "Tape", entries[0].ItemName)
	assert.Equal(t, domain.ActivityIn, entries[0].Type)
	assert.Equal(t, "Glue", entries[1].ItemName)
	assert.Equal(t, domain.ActivityOut, entries[1].Type, "out-of-stock records are labeled out")
}

func TestAllActivityUnbounded(t *testing.T) {
	t.Parallel()

	repo := newMockItemRepo()
	seedInventory(t, repo)
	svc := NewActivityService(repo, nil)

	entries, err := svc.AllActivity(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, entries, 4)
	for _, entry := range entries {
		assert.NotEqual(t, "Foreign", entry.ItemName)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	repo := newMockItemRepo()
	seedInventory(t, repo)
	svc := NewActivityService(repo, nil)

	stats, err := svc.Stats(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalItems)
	assert.Equal(t, int64(2), stats.LowStockItems)
}

func TestStatsReflectsQuantityTransition(t *testing.T) {
	t.Parallel()

	repo := newMockItemRepo()
	inv := seedInventory(t, repo)
	svc := NewActivityService(repo, nil)

	before, err := svc.Stats(context.Background(), "owner-1")
	require.NoError(t, err)

	// Screws drop from low stock to out of stock.
	items, err := inv.List(context.Background(), "owner-1")
	require.NoError(t, err)
	var screwsID string
	for _, item := range items {
		if item.Name == "Screws" {
			screwsID = item.ID
		}
	}
	require.NotEmpty(t, screwsID)

	_, err = inv.Update(context.Background(), "owner-1", screwsID, ItemUpdateInput{Quantity: intPtr(0)})
	require.NoError(t, err)

	after, err := svc.Stats(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, before.TotalItems, after.TotalItems, "total unchanged by an update")
	assert.Equal(t, before.LowStockItems-1, after.LowStockItems)
}

func TestAnalytics(t *testing.T) {
	t.Parallel()

	repo := newMockItemRepo()
	seedInventory(t, repo)
	svc := NewActivityService(repo, nil)

	analytics, err := svc.Analytics(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, int64(61), analytics.Overview.TotalValue, "sum of quantities")
	assert.Equal(t, int64(1), analytics.Overview.ItemsSold, "out-of-stock count proxy")

	require.Len(t, analytics.TopPerforming, 3)
	assert.Equal(t, "Hammer", analytics.TopPerforming[0].Name)

	assert.Equal(t, int64(2), analytics.Health.LowStock)
	assert.Equal(t, int64(1), analytics.Health.OutOfStock)
	assert.Equal(t, int64(1), analytics.Health.InStock)
}
