package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

// AvailabilityAggregator composes item views from an item set, the future
// bookings of those items and their comments.
type AvailabilityAggregator struct {
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
}

func NewAvailabilityAggregator(bookingRepo repository.BookingRepository, commentRepo repository.CommentRepository) *AvailabilityAggregator {
	return &AvailabilityAggregator{
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
	}
}

type bookingHints struct {
	next *time.Time
	last *time.Time
}

// EnrichItems returns one view per item, in input order. Booking hints come
// from bookings of any status that start after now: next is the earliest
// start and last is the latest.
func (a *AvailabilityAggregator) EnrichItems(ctx context.Context, items []domain.Item, now time.Time) ([]domain.ItemView, error) {
	ids := itemIDs(items)
	future, err := a.bookingRepo.ListFutureByItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	hints := make(map[int64]bookingHints, len(items))
	for _, b := range future {
		start := b.Start
		h := hints[b.ItemID]
		if h.next == nil || start.Before(*h.next) {
			h.next = &start
		}
		if h.last == nil || start.After(*h.last) {
			h.last = &start
		}
		hints[b.ItemID] = h
	}

	comments, err := a.commentsByItem(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ItemView, 0, len(items))
	for _, it := range items {
		h := hints[it.ID]
		views = append(views, domain.ItemView{
			Item:        it,
			Comments:    comments[it.ID],
			NextBooking: h.next,
			LastBooking: h.last,
		})
	}
	return views, nil
}

// EnrichSingleItem attaches comments only; booking hints stay nil.
func (a *AvailabilityAggregator) EnrichSingleItem(ctx context.Context, item domain.Item) (domain.ItemView, error) {
	comments, err := a.commentsByItem(ctx, []int64{item.ID})
	if err != nil {
		return domain.ItemView{}, err
	}
	return domain.ItemView{Item: item, Comments: comments[item.ID]}, nil
}

func (a *AvailabilityAggregator) commentsByItem(ctx context.Context, ids []int64) (map[int64][]domain.Comment, error) {
	comments, err := a.commentRepo.ListByItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.Comment, len(ids))
	for _, c := range comments {
		grouped[c.ItemID] = append(grouped[c.ItemID], c)
	}
	return grouped, nil
}

func itemIDs(items []domain.Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}
