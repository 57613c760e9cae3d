package memory

import (
	"context"
	"time"

	"github.com/spec-kit/jobboard-admin/internal/domain"
	"github.com/spec-kit/jobboard-admin/internal/repository"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var last time.Time
	for _, existing := range r.s.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
		if existing.CreatedAt.After(last) {
			last = existing.CreatedAt
		}
	}

	user.ID = newID()
	user.CreatedAt = r.s.stamp(last)
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) List(_ context.Context, filter repository.UserFilter) ([]domain.User, error) {
	r.s.mu.RLock()
	result := []domain.User{}
	for _, user := range r.s.users {
		if matches(filter.Query, user.Name, user.Email, string(user.Role)) {
			result = append(result, user)
		}
	}
	r.s.mu.RUnlock()

	newestFirst(result, func(u domain.User) time.Time { return u.CreatedAt })
	return page(result, filter.Limit, filter.Offset), nil
}

func (r *userRepository) SetBlocked(_ context.Context, id string, blocked bool) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Blocked = blocked
	user.UpdatedAt = r.s.stamp(user.UpdatedAt)
	r.s.users[id] = user
	return &user, nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *userRepository) Count(context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}
