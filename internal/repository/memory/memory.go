// Package memory is a mutex-guarded in-process store implementing the
// repository contracts. It backs the dev profile and the service tests.
package memory

import (
	"sync"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type state struct {
	mu       sync.RWMutex
	seq      map[string]int64
	users    map[int64]domain.User
	items    map[int64]domain.Item
	bookings map[int64]domain.Booking
	comments map[int64]domain.Comment
	requests map[int64]domain.ItemRequest
}

func (s *state) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// Store bundles every repository over one shared state, like postgres.Store.
type Store struct {
	repository.UserRepository
	repository.ItemRepository
	repository.BookingRepository
	repository.CommentRepository
	repository.RequestRepository
}

func NewStore() *Store {
	s := &state{
		seq:      make(map[string]int64),
		users:    make(map[int64]domain.User),
		items:    make(map[int64]domain.Item),
		bookings: make(map[int64]domain.Booking),
		comments: make(map[int64]domain.Comment),
		requests: make(map[int64]domain.ItemRequest),
	}
	return &Store{
		UserRepository:    &userRepository{s: s},
		ItemRepository:    &itemRepository{s: s},
		BookingRepository: &bookingRepository{s: s},
		CommentRepository: &commentRepository{s: s},
		RequestRepository: &requestRepository{s: s},
	}
}

// dropItem removes an item with its bookings and comments, mirroring the
// ON DELETE CASCADE rules of the postgres schema. The write lock must be held.
func (s *state) dropItem(id int64) {
	delete(s.items, id)
	for bid, b := range s.bookings {
		if b.ItemID == id {
			delete(s.bookings, bid)
		}
	}
	for cid, c := range s.comments {
		if c.ItemID == id {
			delete(s.comments, cid)
		}
	}
}

// dropUser removes a user and everything that references them. Items that
// answered one of the user's requests lose their request link. The write
// lock must be held.
func (s *state) dropUser(id int64) {
	delete(s.users, id)
	for iid, it := range s.items {
		if it.OwnerID == id {
			s.dropItem(iid)
		}
	}
	for bid, b := range s.bookings {
		if b.BookerID == id {
			delete(s.bookings, bid)
		}
	}
	for cid, c := range s.comments {
		if c.AuthorID == id {
			delete(s.comments, cid)
		}
	}
	for rid, req := range s.requests {
		if req.AuthorID != id {
			continue
		}
		delete(s.requests, rid)
		for iid, it := range s.items {
			if it.RequestID != nil && *it.RequestID == rid {
				it.RequestID = nil
				s.items[iid] = it
			}
		}
	}
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
