package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

const requestColumns = `id, description, author_id, created`

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	query := `INSERT INTO requests (description, author_id, created) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query, req.Description, req.AuthorID, req.Created).Scan(&req.ID); err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	if err := r.db.GetContext(ctx, req, query, id); err != nil {
		return nil, notFound(err, "getting request", "request id = %d does not exist", id)
	}
	return req, nil
}

func (r *requestRepository) ListByAuthor(ctx context.Context, authorID int64) ([]domain.ItemRequest, error) {
	var reqs []domain.ItemRequest
	query := `SELECT ` + requestColumns + ` FROM requests WHERE author_id = $1 ORDER BY created DESC, id DESC`
	if err := r.db.SelectContext(ctx, &reqs, query, authorID); err != nil {
		return nil, fmt.Errorf("listing own requests: %w", err)
	}
	return reqs, nil
}

func (r *requestRepository) ListExcludingAuthor(ctx context.Context, authorID int64) ([]domain.ItemRequest, error) {
	var reqs []domain.ItemRequest
	query := `SELECT ` + requestColumns + ` FROM requests WHERE author_id <> $1 ORDER BY created DESC, id DESC`
	if err := r.db.SelectContext(ctx, &reqs, query, authorID); err != nil {
		return nil, fmt.Errorf("listing other requests: %w", err)
	}
	return reqs, nil
}
