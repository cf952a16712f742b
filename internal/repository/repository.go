package repository

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
)

// Lookups by id return an error of kind domain.KindNotFound when the row is
// absent. Writes that violate a unique constraint return domain.KindConflict.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
	// ListByOwner returns the owner's items ordered by id.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	// Search returns available items whose name or description contains
	// text, case-insensitively, ordered by id.
	Search(ctx context.Context, text string) ([]domain.Item, error)
	// ListByRequests returns items listed in response to any of the given requests.
	ListByRequests(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}

type BookingRepository interface {
	// Create persists a new booking and assigns its id.
	Create(ctx context.Context, booking *domain.Booking) error
	// GetByID returns the booking with Item and Booker populated.
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// UpdateStatus sets the status of a single booking row in one statement.
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	// ListByBooker and ListByOwner return matching bookings ordered by start
	// descending, then id descending.
	ListByBooker(ctx context.Context, bookerID int64, q BookingQuery) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, q BookingQuery) ([]domain.Booking, error)
	// ListFutureByItems returns bookings of any status for the given items
	// whose start is after now.
	ListFutureByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]domain.Booking, error)
	// HasCompleted reports whether the booker has a booking of the item whose
	// end is not after now.
	HasCompleted(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// ListByItems returns comments with AuthorName populated, ordered by id.
	ListByItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error)
}

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	// ListByAuthor and ListExcludingAuthor order by created descending.
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.ItemRequest, error)
	ListExcludingAuthor(ctx context.Context, authorID int64) ([]domain.ItemRequest, error)
}
