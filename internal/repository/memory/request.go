package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type requestRepository struct {
	s *state
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req.ID = r.s.next("requests")
	r.s.requests[req.ID] = *req
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, domain.NotFound("request id = %d does not exist", id)
	}
	return &req, nil
}

func (r *requestRepository) list(keep func(domain.ItemRequest) bool) []domain.ItemRequest {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.ItemRequest
	for _, req := range r.s.requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.After(out[j].Created)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (r *requestRepository) ListByAuthor(ctx context.Context, authorID int64) ([]domain.ItemRequest, error) {
	return r.list(func(req domain.ItemRequest) bool { return req.AuthorID == authorID }), nil
}

func (r *requestRepository) ListExcludingAuthor(ctx context.Context, authorID int64) ([]domain.ItemRequest, error) {
	return r.list(func(req domain.ItemRequest) bool { return req.AuthorID != authorID }), nil
}
