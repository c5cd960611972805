package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/cache"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
	apperrors "github.com/spec-kit/inventory-service/pkg/util"
)

const (
	minNameLen     = 2
	maxNameLen     = 100
	minCategoryLen = 2
	maxCategoryLen = 50
)

// InventoryService owns per-user inventory records and the quantity to
// status derivation rule. Every operation is scoped to the owner passed
// in; a record belonging to someone else is reported as absent.
type InventoryService struct {
	items      repository.ItemRepository
	dispatcher events.Dispatcher
	aggregates *cache.Cache
}

// ItemCreateInput describes the creation payload.
type ItemCreateInput struct {
	Name     string
	Quantity int
	Category string
}

// ItemUpdateInput describes a partial update; nil fields stay untouched.
type ItemUpdateInput struct {
	Name     *string
	Quantity *int
	Category *string
}

// NewInventoryService constructs the service. dispatcher and aggregates
// may be nil in tests.
func NewInventoryService(items repository.ItemRepository, dispatcher events.Dispatcher, aggregates *cache.Cache) *InventoryService {
	return &InventoryService{items: items, dispatcher: dispatcher, aggregates: aggregates}
}

// Create validates the payload, derives the initial status and persists
// the record under ownerID.
func (s *InventoryService) Create(ctx context.Context, ownerID string, input ItemCreateInput) (*domain.Item, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)

	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	item := &domain.Item{
		OwnerID:  ownerID,
		Name:     name,
		Quantity: input.Quantity,
		Category: category,
		Status:   domain.StatusForQuantity(input.Quantity),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventItemCreated,
		ItemID:  item.ID,
		OwnerID: ownerID,
		Payload: events.ItemCreatedPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Category: item.Category,
			Status:   item.Status,
		},
	})
	s.invalidateAggregates(ctx, ownerID)
	return item, nil
}

// List returns all records owned by ownerID, most recently created
// first.
func (s *InventoryService) List(ctx context.Context, ownerID string) ([]domain.Item, error) {
	return s.items.ListByOwner(ctx, ownerID)
}

// Update loads the record filtered by both id and owner in one step,
// merges the supplied fields, recomputes status and persists. A record
// that is missing or owned by somebody else fails identically.
func (s *InventoryService) Update(ctx context.Context, ownerID, itemID string, input ItemUpdateInput) (*domain.Item, error) {
	item, err := s.items.GetByIDAndOwner(ctx, itemID, ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("item")
		}
		return nil, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}

	if err := validateName(item.Name); err != nil {
		return nil, err
	}
	if err := validateQuantity(item.Quantity); err != nil {
		return nil, err
	}
	if err := validateCategory(item.Category); err != nil {
		return nil, err
	}

	oldStatus := item.Status
	item.Status = domain.StatusForQuantity(item.Quantity)

	if err := s.items.Update(ctx, item); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("item")
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventItemUpdated,
		ItemID:  item.ID,
		OwnerID: ownerID,
		Payload: events.ItemUpdatedPayload{
			Name:     item.Name,
			Quantity: item.Quantity,
			Status:   item.Status,
		},
	})
	if item.Status != oldStatus {
		s.publish(ctx, events.Event{
			Type:    events.EventStockStatusChanged,
			ItemID:  item.ID,
			OwnerID: ownerID,
			Payload: events.StockStatusChangedPayload{
				Name:      item.Name,
				OldStatus: oldStatus,
				NewStatus: item.Status,
				Quantity:  item.Quantity,
			},
		})
	}
	s.invalidateAggregates(ctx, ownerID)
	return item, nil
}

// Delete removes the record under the same ownership-scoped condition
// as Update.
func (s *InventoryService) Delete(ctx context.Context, ownerID, itemID string) error {
	item, err := s.items.GetByIDAndOwner(ctx, itemID, ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("item")
		}
		return err
	}

	if err := s.items.DeleteByIDAndOwner(ctx, itemID, ownerID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("item")
		}
		return err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventItemDeleted,
		ItemID:  itemID,
		OwnerID: ownerID,
		Payload: events.ItemDeletedPayload{Name: item.Name},
	})
	s.invalidateAggregates(ctx, ownerID)
	return nil
}

func (s *InventoryService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *InventoryService) invalidateAggregates(ctx context.Context, ownerID string) {
	s.aggregates.Delete(ctx, statsCacheKey(ownerID), analyticsCacheKey(ownerID))
}

func validateName(name string) error {
	if len(name) < minNameLen || len(name) > maxNameLen {
		return apperrors.NewValidationError(
			fmt.Sprintf("item name must be between %d and %d characters", minNameLen, maxNameLen))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 0 {
		return apperrors.NewValidationError("quantity must be a positive number")
	}
	return nil
}

func validateCategory(category string) error {
	if len(category) < minCategoryLen || len(category) > maxCategoryLen {
		return apperrors.NewValidationError(
			fmt.Sprintf("category must be between %d and %d characters", minCategoryLen, maxCategoryLen))
	}
	return nil
}
