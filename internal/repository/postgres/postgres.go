package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

// dialect renders postgres SQL. Datasets built from it call Prepared(true)
// so values bind as $n placeholders.
var dialect = goqu.Dialect("postgres")

type Store struct {
	db *sqlx.DB
	repository.UserRepository
	repository.ItemRepository
	repository.BookingRepository
	repository.CommentRepository
	repository.RequestRepository
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		ItemRepository:    NewItemRepository(db),
		BookingRepository: NewBookingRepository(db),
		CommentRepository: NewCommentRepository(db),
		RequestRepository: NewRequestRepository(db),
	}
}

// DB exposes the underlying handle for schema management and shutdown.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Open connects using driver "postgres" (lib/pq) or "pgx" (pgx stdlib) and
// verifies the connection.
func Open(ctx context.Context, driver, dsn string, maxOpenConns int) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.UniqueViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// notFound converts sql.ErrNoRows into a domain error and wraps anything else.
func notFound(err error, op string, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(format, args...)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// requireRow turns a zero-rows-affected result into a not-found error.
func requireRow(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return domain.NotFound(format, args...)
	}
	return nil
}
