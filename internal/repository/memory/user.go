package memory

import (
	"context"
	"strings"

	"shareit-backend/internal/domain"
)

type userRepository struct {
	s *state
}

// emailTaken must be called with the lock held.
func (r *userRepository) emailTaken(email string, exceptID int64) bool {
	for id, u := range r.s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailTaken(user.Email, 0) {
		return domain.Conflict("user with email " + user.Email + " already exists")
	}
	user.ID = r.s.next("users")
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.NotFound("user id = %d does not exist", id)
	}
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.NotFound("user id = %d does not exist", user.ID)
	}
	if r.emailTaken(user.Email, user.ID) {
		return domain.Conflict("user with email " + user.Email + " already exists")
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.NotFound("user id = %d does not exist", id)
	}
	r.s.dropUser(id)
	return nil
}
