package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// ItemRepository encapsulates inventory record persistence. Every lookup
// that serves a mutation filters by both id and owner in a single query
// so that foreign and absent records are indistinguishable.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item *domain.Item) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Item, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Item, error)
	ListByOwnerUpdatedDesc(ctx context.Context, ownerID string, limit int) ([]domain.Item, error)
	TopByQuantity(ctx context.Context, ownerID string, limit int) ([]domain.Item, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	CountByOwnerAndStatus(ctx context.Context, ownerID string, status domain.StockStatus) (int64, error)
	TotalQuantity(ctx context.Context, ownerID string) (int64, error)
}

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository instantiates the repository.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

const itemColumns = `id, owner_id, name, quantity, category, status, created_at, updated_at`

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
        INSERT INTO inventory_items (owner_id, name, quantity, category, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		item.OwnerID,
		item.Name,
		item.Quantity,
		item.Category,
		item.Status,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	const query = `
        UPDATE inventory_items SET name=$1, quantity=$2, category=$3, status=$4, updated_at=NOW()
        WHERE id=$5 AND owner_id=$6
        RETURNING updated_at`

	return r.pool.QueryRow(ctx, query,
		item.Name,
		item.Quantity,
		item.Category,
		item.Status,
		item.ID,
		item.OwnerID,
	).Scan(&item.UpdatedAt)
}

func (r *itemRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Item, error) {
	const query = `
        SELECT ` + itemColumns + `
        FROM inventory_items WHERE id=$1 AND owner_id=$2`

	var item domain.Item
	if err := r.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Quantity,
		&item.Category,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM inventory_items WHERE id=$1 AND owner_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	const query = `
        SELECT ` + itemColumns + `
        FROM inventory_items WHERE owner_id=$1
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) ListByOwnerUpdatedDesc(ctx context.Context, ownerID string, limit int) ([]domain.Item, error) {
	query := `
        SELECT ` + itemColumns + `
        FROM inventory_items WHERE owner_id=$1
        ORDER BY updated_at DESC`
	args := []any{ownerID}
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $2`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) TopByQuantity(ctx context.Context, ownerID string, limit int) ([]domain.Item, error) {
	const query = `
        SELECT ` + itemColumns + `
        FROM inventory_items WHERE owner_id=$1
        ORDER BY quantity DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM inventory_items WHERE owner_id=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *itemRepository) CountByOwnerAndStatus(ctx context.Context, ownerID string, status domain.StockStatus) (int64, error) {
	const query = `SELECT COUNT(*) FROM inventory_items WHERE owner_id=$1 AND status=$2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, ownerID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *itemRepository) TotalQuantity(ctx context.Context, ownerID string) (int64, error) {
	const query = `SELECT COALESCE(SUM(quantity), 0) FROM inventory_items WHERE owner_id=$1`

	var total int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	var result []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Name,
			&item.Quantity,
			&item.Category,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
