package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository/memory"
)

// day is the date every scenario runs on.
var day = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

type fixture struct {
	store    *memory.Store
	clock    *clock.Manual
	bookings BookingService
	items    ItemService
	requests RequestService
	users    UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewManual(at(9, 0))
	return &fixture{
		store:    store,
		clock:    clk,
		bookings: NewBookingService(store.BookingRepository, store.ItemRepository, store.UserRepository, clk),
		items:    NewItemService(store.ItemRepository, store.UserRepository, store.RequestRepository, store.BookingRepository, store.CommentRepository, clk),
		requests: NewRequestService(store.RequestRepository, store.ItemRepository, store.UserRepository, clk),
		users:    NewUserService(store.UserRepository),
	}
}

func (f *fixture) user(t *testing.T, name string) *domain.User {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), name, name+"@mail.com")
	require.NoError(t, err)
	return u
}

func (f *fixture) item(t *testing.T, owner *domain.User, name string, available bool) *domain.Item {
	t.Helper()
	it, err := f.items.CreateItem(context.Background(), owner.ID, &domain.Item{
		Name:        name,
		Description: name + " for rent",
		Available:   available,
	})
	require.NoError(t, err)
	return it
}

func (f *fixture) book(t *testing.T, booker *domain.User, item *domain.Item, start, end time.Time) *domain.Booking {
	t.Helper()
	b, err := f.bookings.CreateBooking(context.Background(), booker.ID, item.ID, start, end)
	require.NoError(t, err)
	return b
}

func bookingIDs(bookings []domain.Booking) []int64 {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}
