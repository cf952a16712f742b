package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

const msgEmailTaken = "user with this email already exists"

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`
	err := r.db.QueryRowxContext(ctx, query, user.Name, user.Email).Scan(&user.ID)
	if isUniqueViolation(err) {
		return domain.Conflict(msgEmailTaken)
	}
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, name, email FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, u, query, id); err != nil {
		return nil, notFound(err, "getting user", "user id = %d does not exist", id)
	}
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $1, email = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, user.Name, user.Email, user.ID)
	if isUniqueViolation(err) {
		return domain.Conflict(msgEmailTaken)
	}
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return requireRow(res, "user id = %d does not exist", user.ID)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return requireRow(res, "user id = %d does not exist", id)
}
