package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
)

type mockUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.nextID++
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type mockItemRepo struct {
	items  map[string]*domain.Item
	nextID int
	// clock lets tests control created/updated ordering.
	now time.Time
}

func newMockItemRepo() *mockItemRepo {
	return &mockItemRepo{items: make(map[string]*domain.Item), now: time.Unix(1700000000, 0)}
}

func (m *mockItemRepo) tick() time.Time {
	m.now = m.now.Add(time.Second)
	return m.now
}

func (m *mockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	m.nextID++
	item.ID = fmt.Sprintf("item-%d", m.nextID)
	item.CreatedAt = m.tick()
	item.UpdatedAt = item.CreatedAt
	stored := *item
	m.items[item.ID] = &stored
	return nil
}

func (m *mockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	stored, ok := m.items[item.ID]
	if !ok || stored.OwnerID != item.OwnerID {
		return pgx.ErrNoRows
	}
	item.UpdatedAt = m.tick()
	copied := *item
	m.items[item.ID] = &copied
	return nil
}

func (m *mockItemRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, pgx.ErrNoRows
	}
	copied := *item
	return &copied, nil
}

func (m *mockItemRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return pgx.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func (m *mockItemRepo) ownerItems(ownerID string) []domain.Item {
	var result []domain.Item
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			result = append(result, *item)
		}
	}
	return result
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	result := m.ownerItems(ownerID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockItemRepo) ListByOwnerUpdatedDesc(ctx context.Context, ownerID string, limit int) ([]domain.Item, error) {
	result := m.ownerItems(ownerID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockItemRepo) TopByQuantity(ctx context.Context, ownerID string, limit int) ([]domain.Item, error) {
	result := m.ownerItems(ownerID)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Quantity > result[j].Quantity
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockItemRepo) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	return int64(len(m.ownerItems(ownerID))), nil
}

func (m *mockItemRepo) CountByOwnerAndStatus(ctx context.Context, ownerID string, status domain.StockStatus) (int64, error) {
	var count int64
	for _, item := range m.ownerItems(ownerID) {
		if item.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockItemRepo) TotalQuantity(ctx context.Context, ownerID string) (int64, error) {
	var total int64
	for _, item := range m.ownerItems(ownerID) {
		total += int64(item.Quantity)
	}
	return total, nil
}
