package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

// bookingRow is one booking joined with its item and booker.
type bookingRow struct {
	ID              int64     `db:"id"`
	ItemID          int64     `db:"item_id"`
	BookerID        int64     `db:"booker_id"`
	Start           time.Time `db:"start_date"`
	End             time.Time `db:"end_date"`
	Status          string    `db:"status"`
	ItemOwnerID     int64     `db:"item_owner_id"`
	ItemName        string    `db:"item_name"`
	ItemDescription string    `db:"item_description"`
	ItemAvailable   bool      `db:"item_available"`
	ItemRequestID   *int64    `db:"item_request_id"`
	BookerName      string    `db:"booker_name"`
	BookerEmail     string    `db:"booker_email"`
}

func (row bookingRow) toDomain() domain.Booking {
	return domain.Booking{
		ID:       row.ID,
		ItemID:   row.ItemID,
		BookerID: row.BookerID,
		Start:    row.Start,
		End:      row.End,
		Status:   domain.BookingStatus(row.Status),
		Item: &domain.Item{
			ID:          row.ItemID,
			OwnerID:     row.ItemOwnerID,
			Name:        row.ItemName,
			Description: row.ItemDescription,
			Available:   row.ItemAvailable,
			RequestID:   row.ItemRequestID,
		},
		Booker: &domain.User{
			ID:    row.BookerID,
			Name:  row.BookerName,
			Email: row.BookerEmail,
		},
	}
}

type bookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func bookingSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T("bookings").As("b")).Prepared(true).
		Join(goqu.T("items").As("i"), goqu.On(goqu.I("i.id").Eq(goqu.I("b.item_id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("b.booker_id")))).
		Select(
			goqu.I("b.id"),
			goqu.I("b.item_id"),
			goqu.I("b.booker_id"),
			goqu.I("b.start_date"),
			goqu.I("b.end_date"),
			goqu.I("b.status"),
			goqu.I("i.owner_id").As("item_owner_id"),
			goqu.I("i.name").As("item_name"),
			goqu.I("i.description").As("item_description"),
			goqu.I("i.available").As("item_available"),
			goqu.I("i.request_id").As("item_request_id"),
			goqu.I("u.name").As("booker_name"),
			goqu.I("u.email").As("booker_email"),
		)
}

// queryExpressions translates a BookingQuery into WHERE conditions.
func queryExpressions(q repository.BookingQuery) []goqu.Expression {
	var ex []goqu.Expression
	if q.Status != "" {
		ex = append(ex, goqu.I("b.status").Eq(string(q.Status)))
	}
	if q.StartNotAfter != nil {
		ex = append(ex, goqu.I("b.start_date").Lte(*q.StartNotAfter))
	}
	if q.StartAfter != nil {
		ex = append(ex, goqu.I("b.start_date").Gt(*q.StartAfter))
	}
	if q.EndAfter != nil {
		ex = append(ex, goqu.I("b.end_date").Gt(*q.EndAfter))
	}
	if q.EndNotAfter != nil {
		ex = append(ex, goqu.I("b.end_date").Lte(*q.EndNotAfter))
	}
	return ex
}

func (r *bookingRepository) selectRows(ctx context.Context, op string, ds *goqu.SelectDataset) ([]domain.Booking, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building %s query: %w", op, err)
	}

	logger.DatabaseCall(ctx, op, query)
	var rows []bookingRow
	err = r.db.SelectContext(ctx, &rows, query, args...)
	logger.DatabaseResult(ctx, op, len(rows), err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.toDomain())
	}
	return bookings, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowxContext(ctx, query, b.ItemID, b.BookerID, b.Start, b.End, b.Status).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("creating booking: %w", err)
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := bookingSelect().Where(goqu.I("b.id").Eq(id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("building booking query: %w", err)
	}
	var row bookingRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, notFound(err, "getting booking", "booking id = %d does not exist", id)
	}
	b := row.toDomain()
	return &b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating booking status: %w", err)
	}
	return requireRow(res, "booking id = %d does not exist", id)
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, q repository.BookingQuery) ([]domain.Booking, error) {
	where := append([]goqu.Expression{goqu.I("b.booker_id").Eq(bookerID)}, queryExpressions(q)...)
	ds := bookingSelect().
		Where(where...).
		Order(goqu.I("b.start_date").Desc(), goqu.I("b.id").Desc())
	return r.selectRows(ctx, "bookings.list_by_booker", ds)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64, q repository.BookingQuery) ([]domain.Booking, error) {
	where := append([]goqu.Expression{goqu.I("i.owner_id").Eq(ownerID)}, queryExpressions(q)...)
	ds := bookingSelect().
		Where(where...).
		Order(goqu.I("b.start_date").Desc(), goqu.I("b.id").Desc())
	return r.selectRows(ctx, "bookings.list_by_owner", ds)
}

func (r *bookingRepository) ListFutureByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]domain.Booking, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	ds := bookingSelect().
		Where(
			goqu.I("b.item_id").In(itemIDs),
			goqu.I("b.start_date").Gt(now),
		).
		Order(goqu.I("b.start_date").Asc(), goqu.I("b.id").Asc())
	return r.selectRows(ctx, "bookings.list_future_by_items", ds)
}

func (r *bookingRepository) HasCompleted(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	              SELECT 1 FROM bookings
	              WHERE item_id = $1 AND booker_id = $2 AND end_date <= $3)`
	if err := r.db.GetContext(ctx, &exists, query, itemID, bookerID, now); err != nil {
		return false, fmt.Errorf("checking completed bookings: %w", err)
	}
	return exists, nil
}
