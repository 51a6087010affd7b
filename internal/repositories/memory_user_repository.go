package repositories

import (
	"context"
	"sync"
	"time"

	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"
)

type MemoryUserRepository struct {
	mu      sync.RWMutex
	items   map[string]*entities.User
	byEmail map[string]string
	now     func() time.Time
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		items:   make(map[string]*entities.User),
		byEmail: make(map[string]string),
		now:     time.Now,
	}
}

func (r *MemoryUserRepository) FindUserByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (r *MemoryUserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[entities.NormalizeEmail(email)]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return r.FindUserByID(ctx, id)
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user *entities.User) (*entities.User, error) {
	u := *user
	if err := prepareUserCreate(&u, r.now()); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return nil, apperrors.NewConflictError("email", u.Email)
	}
	if _, exists := r.items[u.ID]; exists {
		return nil, apperrors.NewConflictError("id", u.ID)
	}
	r.items[u.ID] = &u
	r.byEmail[u.Email] = u.ID
	c := u
	return &c, nil
}

func (r *MemoryUserRepository) SetUserActive(_ context.Context, id string, active bool) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u.IsActive = active
	u.Touch(r.now())
	c := *u
	return &c, nil
}
