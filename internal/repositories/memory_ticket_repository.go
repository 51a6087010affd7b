package repositories

import (
	"context"
	"sync"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"
)

type MemoryTicketRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.Ticket
	order []string
	now   func() time.Time
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{
		items: make(map[string]*entities.Ticket),
		now:   time.Now,
	}
}

func (r *MemoryTicketRepository) GetTickets(_ context.Context, filter entities.TicketFilter) ([]*entities.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entities.Ticket, 0, len(r.order))
	for _, id := range r.order {
		if t := r.items[id]; filter.Match(t) {
			list = append(list, t.Clone())
		}
	}
	return list, nil
}

func (r *MemoryTicketRepository) FindTicket(_ context.Context, id string) (*entities.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return t.Clone(), nil
}

func (r *MemoryTicketRepository) CreateTicket(_ context.Context, ticket *entities.Ticket, actorID string) (*entities.Ticket, error) {
	t := ticket.Clone()
	if err := prepareTicketCreate(t, actorID, r.now()); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[t.ID] = t
	r.order = append(r.order, t.ID)
	return t.Clone(), nil
}

func (r *MemoryTicketRepository) UpdateTicket(_ context.Context, id string, patch dto.UpdateTicketDTO) (*entities.Ticket, entities.TicketStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return nil, "", apperrors.ErrNotFound
	}
	t := current.Clone()
	if err := prepareTicketUpdate(t, patch, r.now()); err != nil {
		return nil, "", err
	}
	r.items[id] = t
	return t.Clone(), current.Status, nil
}

func (r *MemoryTicketRepository) AddComment(_ context.Context, id string, comment entities.Comment) (*entities.Ticket, error) {
	return r.mutate(id, func(t *entities.Ticket) {
		t.Comments = append(t.Comments, comment)
	})
}

func (r *MemoryTicketRepository) AddPhoto(_ context.Context, id string, photo entities.Photo) (*entities.Ticket, error) {
	return r.mutate(id, func(t *entities.Ticket) {
		t.Photos = append(t.Photos, photo)
	})
}

func (r *MemoryTicketRepository) mutate(id string, fn func(t *entities.Ticket)) (*entities.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	t := current.Clone()
	fn(t)
	t.Touch(r.now())
	r.items[id] = t
	return t.Clone(), nil
}

func (r *MemoryTicketRepository) DeleteTicket(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}

// GetTicketStats считает обе разбивки за один проход.
func (r *MemoryTicketRepository) GetTicketStats(_ context.Context) (entities.TicketStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := entities.NewTicketStats()
	for _, t := range r.items {
		stats.Add(t.Status, t.Priority, 1)
	}
	return stats, nil
}
