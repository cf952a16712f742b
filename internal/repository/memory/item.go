package memory

import (
	"context"
	"sort"
	"strings"

	"shareit-backend/internal/domain"
)

type itemRepository struct {
	s *state
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.next("items")
	r.s.items[item.ID] = *item
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[id]
	if !ok {
		return nil, domain.NotFound("item id = %d does not exist", id)
	}
	return &it, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; !ok {
		return domain.NotFound("item id = %d does not exist", item.ID)
	}
	r.s.items[item.ID] = *item
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return domain.NotFound("item id = %d does not exist", id)
	}
	r.s.dropItem(id)
	return nil
}

func (r *itemRepository) filter(keep func(domain.Item) bool) []domain.Item {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Item
	for _, it := range r.s.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	return r.filter(func(it domain.Item) bool { return it.OwnerID == ownerID }), nil
}

func (r *itemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	needle := strings.ToLower(text)
	return r.filter(func(it domain.Item) bool {
		return it.Available &&
			(strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle))
	}), nil
}

func (r *itemRepository) ListByRequests(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	set := idSet(requestIDs)
	return r.filter(func(it domain.Item) bool {
		if it.RequestID == nil {
			return false
		}
		_, ok := set[*it.RequestID]
		return ok
	}), nil
}
