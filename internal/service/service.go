package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID, requesterID int64) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*domain.Booking, error)
	ListForBooker(ctx context.Context, bookerID int64, state domain.BookingState) ([]domain.Booking, error)
	ListForOwner(ctx context.Context, ownerID int64, state domain.BookingState) ([]domain.Booking, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID, ownerID int64, patch domain.ItemPatch) (*domain.Item, error)
	DeleteItem(ctx context.Context, itemID, ownerID int64) error
	GetItem(ctx context.Context, itemID int64) (*domain.ItemView, error)
	ListOwnerItems(ctx context.Context, ownerID int64) ([]domain.ItemView, error)
	Search(ctx context.Context, text string) ([]domain.Item, error)
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*domain.Comment, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, authorID int64, description string) (*domain.ItemRequest, error)
	ListOwnRequests(ctx context.Context, authorID int64) ([]domain.RequestView, error)
	ListOtherRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	GetRequest(ctx context.Context, requestID int64) (*domain.RequestView, error)
}
