package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `INSERT INTO comments (item_id, author_id, text, created) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, c.ItemID, c.AuthorID, c.Text, c.Created).Scan(&c.ID); err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (r *commentRepository) ListByItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	query, args, err := dialect.From(goqu.T("comments").As("c")).Prepared(true).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.author_id")))).
		Select(
			goqu.I("c.id"),
			goqu.I("c.item_id"),
			goqu.I("c.author_id"),
			goqu.I("c.text"),
			goqu.I("c.created"),
			goqu.I("u.name").As("author_name"),
		).
		Where(goqu.I("c.item_id").In(itemIDs)).
		Order(goqu.I("c.id").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building comments query: %w", err)
	}

	var comments []domain.Comment
	if err := r.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}
