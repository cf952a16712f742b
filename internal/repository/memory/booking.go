package memory

import (
	"context"
	"sort"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type bookingRepository struct {
	s *state
}

// hydrate attaches the item and booker; the read lock must be held.
func (r *bookingRepository) hydrate(b domain.Booking) domain.Booking {
	if it, ok := r.s.items[b.ItemID]; ok {
		b.Item = &it
	}
	if u, ok := r.s.users[b.BookerID]; ok {
		b.Booker = &u
	}
	return b
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	booking.ID = r.s.next("bookings")
	stored := *booking
	stored.Item, stored.Booker = nil, nil
	r.s.bookings[booking.ID] = stored
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.NotFound("booking id = %d does not exist", id)
	}
	b = r.hydrate(b)
	return &b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return domain.NotFound("booking id = %d does not exist", id)
	}
	b.Status = status
	r.s.bookings[id] = b
	return nil
}

func (r *bookingRepository) list(keep func(domain.Booking) bool) []domain.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Booking
	for _, b := range r.s.bookings {
		if keep(b) {
			out = append(out, r.hydrate(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.After(out[j].Start)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, q repository.BookingQuery) ([]domain.Booking, error) {
	return r.list(func(b domain.Booking) bool {
		return b.BookerID == bookerID && q.Matches(b)
	}), nil
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64, q repository.BookingQuery) ([]domain.Booking, error) {
	return r.list(func(b domain.Booking) bool {
		it, ok := r.s.items[b.ItemID]
		return ok && it.OwnerID == ownerID && q.Matches(b)
	}), nil
}

func (r *bookingRepository) ListFutureByItems(ctx context.Context, itemIDs []int64, now time.Time) ([]domain.Booking, error) {
	set := idSet(itemIDs)
	return r.list(func(b domain.Booking) bool {
		_, ok := set[b.ItemID]
		return ok && b.Start.After(now)
	}), nil
}

func (r *bookingRepository) HasCompleted(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, b := range r.s.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID && !b.End.After(now) {
			return true, nil
		}
	}
	return false, nil
}
