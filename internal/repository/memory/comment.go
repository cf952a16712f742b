package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type commentRepository struct {
	s *state
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	comment.ID = r.s.next("comments")
	if u, ok := r.s.users[comment.AuthorID]; ok {
		comment.AuthorName = u.Name
	}
	r.s.comments[comment.ID] = *comment
	return nil
}

func (r *commentRepository) ListByItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	set := idSet(itemIDs)
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []domain.Comment
	for _, c := range r.s.comments {
		if _, ok := set[c.ItemID]; !ok {
			continue
		}
		if u, ok := r.s.users[c.AuthorID]; ok {
			c.AuthorName = u.Name
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
