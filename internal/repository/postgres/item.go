package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

const itemColumns = `id, owner_id, name, description, available, request_id`

type itemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (owner_id, name, description, available, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowxContext(ctx, query, it.OwnerID, it.Name, it.Description, it.Available, it.RequestID).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	it := &domain.Item{}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	if err := r.db.GetContext(ctx, it, query, id); err != nil {
		return nil, notFound(err, "getting item", "item id = %d does not exist", id)
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, it.Name, it.Description, it.Available, it.ID)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return requireRow(res, "item id = %d does not exist", it.ID)
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return requireRow(res, "item id = %d does not exist", id)
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	var items []domain.Item
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query, ownerID); err != nil {
		return nil, fmt.Errorf("listing owner items: %w", err)
	}
	return items, nil
}

// likeEscaper neutralises LIKE wildcards so the search text matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *itemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	var items []domain.Item
	query := `SELECT ` + itemColumns + ` FROM items
	          WHERE available AND (name ILIKE $1 OR description ILIKE $1)
	          ORDER BY id`
	pattern := "%" + likeEscaper.Replace(text) + "%"
	if err := r.db.SelectContext(ctx, &items, query, pattern); err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) ListByRequests(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	query, args, err := dialect.From("items").Prepared(true).
		Select("id", "owner_id", "name", "description", "available", "request_id").
		Where(goqu.C("request_id").In(requestIDs)).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building request items query: %w", err)
	}

	logger.DatabaseCall(ctx, "items.list_by_requests", query)
	var items []domain.Item
	err = r.db.SelectContext(ctx, &items, query, args...)
	logger.DatabaseResult(ctx, "items.list_by_requests", len(items), err)
	if err != nil {
		return nil, fmt.Errorf("listing request items: %w", err)
	}
	return items, nil
}
