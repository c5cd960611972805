package service

import (
	"context"
	"time"

	"github.com/spec-kit/inventory-service/internal/cache"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/repository"
)

const (
	recentActivityLimit = 3
	topPerformingLimit  = 3
	aggregateCacheTTL   = 30 * time.Second
)

// ActivityService computes read-only views over the current inventory
// state. There is no event history behind these views: activity entries
// and sold counts are proxies derived from record snapshots.
type ActivityService struct {
	items      repository.ItemRepository
	aggregates *cache.Cache
}

// NewActivityService constructs the service. aggregates may be nil.
func NewActivityService(items repository.ItemRepository, aggregates *cache.Cache) *ActivityService {
	return &ActivityService{items: items, aggregates: aggregates}
}

// RecentActivity returns the most recently updated records for the
// owner, labeled with their heuristic movement direction.
func (s *ActivityService) RecentActivity(ctx context.Context, ownerID string) ([]domain.ActivityEntry, error) {
	return s.activity(ctx, ownerID, recentActivityLimit)
}

// AllActivity returns the unbounded activity view.
func (s *ActivityService) AllActivity(ctx context.Context, ownerID string) ([]domain.ActivityEntry, error) {
	return s.activity(ctx, ownerID, 0)
}

func (s *ActivityService) activity(ctx context.Context, ownerID string, limit int) ([]domain.ActivityEntry, error) {
	items, err := s.items.ListByOwnerUpdatedDesc(ctx, ownerID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ActivityEntry, 0, len(items))
	for i := range items {
		entries = append(entries, domain.ActivityForItem(&items[i]))
	}
	return entries, nil
}

// Stats reports total and low-stock record counts for the owner.
func (s *ActivityService) Stats(ctx context.Context, ownerID string) (*domain.Stats, error) {
	key := statsCacheKey(ownerID)
	var cached domain.Stats
	if s.aggregates.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	total, err := s.items.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.items.CountByOwnerAndStatus(ctx, ownerID, domain.StatusLowStock)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{TotalItems: total, LowStockItems: lowStock}
	s.aggregates.SetJSON(ctx, key, stats, aggregateCacheTTL)
	return stats, nil
}

// Analytics assembles the owner's summary view: quantity totals, sold
// proxy, top movers and health counts.
func (s *ActivityService) Analytics(ctx context.Context, ownerID string) (*domain.Analytics, error) {
	key := analyticsCacheKey(ownerID)
	var cached domain.Analytics
	if s.aggregates.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	totalValue, err := s.items.TotalQuantity(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	top, err := s.items.TopByQuantity(ctx, ownerID, topPerformingLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.items.CountByOwnerAndStatus(ctx, ownerID, domain.StatusLowStock)
	if err != nil {
		return nil, err
	}
	outOfStock, err := s.items.CountByOwnerAndStatus(ctx, ownerID, domain.StatusOutOfStock)
	if err != nil {
		return nil, err
	}
	inStock, err := s.items.CountByOwnerAndStatus(ctx, ownerID, domain.StatusInStock)
	if err != nil {
		return nil, err
	}

	analytics := &domain.Analytics{
		Overview: domain.AnalyticsOverview{
			TotalValue: totalValue,
			ItemsSold:  outOfStock,
		},
		TopPerforming: top,
		Health: domain.InventoryHealth{
			LowStock:   lowStock,
			OutOfStock: outOfStock,
			InStock:    inStock,
		},
	}
	s.aggregates.SetJSON(ctx, key, analytics, aggregateCacheTTL)
	return analytics, nil
}

func statsCacheKey(ownerID string) string {
	return "inventory:stats:" + ownerID
}

func analyticsCacheKey(ownerID string) string {
	return "inventory:analytics:" + ownerID
}
