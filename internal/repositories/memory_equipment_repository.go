package repositories

import (
	"context"
	"sync"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	apperrors "smart-gmao/pkg/errors"
)

// MemoryEquipmentRepository хранит оборудование в памяти; все изменения коллекции
// выполняются под одной блокировкой записи.
type MemoryEquipmentRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.Equipment
	order []string
	now   func() time.Time
}

func NewMemoryEquipmentRepository() *MemoryEquipmentRepository {
	return &MemoryEquipmentRepository{
		items: make(map[string]*entities.Equipment),
		now:   time.Now,
	}
}

func (r *MemoryEquipmentRepository) GetEquipments(_ context.Context, filter entities.EquipmentFilter) ([]*entities.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entities.Equipment, 0, len(r.order))
	for _, id := range r.order {
		if e := r.items[id]; filter.Match(e) {
			list = append(list, e.Clone())
		}
	}
	return list, nil
}

func (r *MemoryEquipmentRepository) FindEquipment(_ context.Context, id string) (*entities.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return e.Clone(), nil
}

func (r *MemoryEquipmentRepository) CreateEquipment(_ context.Context, equipment *entities.Equipment, actorID string) (*entities.Equipment, error) {
	e := equipment.Clone()
	if err := prepareEquipmentCreate(e, actorID, r.now()); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSerialUnique(e); err != nil {
		return nil, err
	}
	r.items[e.ID] = e
	r.order = append(r.order, e.ID)
	return e.Clone(), nil
}

func (r *MemoryEquipmentRepository) UpdateEquipment(_ context.Context, id string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	e := current.Clone()
	if err := prepareEquipmentUpdate(e, patch, r.now()); err != nil {
		return nil, err
	}
	if err := r.checkSerialUnique(e); err != nil {
		return nil, err
	}
	r.items[id] = e
	return e.Clone(), nil
}

func (r *MemoryEquipmentRepository) DeleteEquipment(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.items, id)
	r.order = removeID(r.order, id)
	return nil
}

// checkSerialUnique вызывается под r.mu; пустой серийный номер не уникален.
func (r *MemoryEquipmentRepository) checkSerialUnique(e *entities.Equipment) error {
	if e.SerialNumber == nil {
		return nil
	}
	for id, other := range r.items {
		if id != e.ID && other.SerialNumber != nil && *other.SerialNumber == *e.SerialNumber {
			return apperrors.NewConflictError("serialNumber", *e.SerialNumber)
		}
	}
	return nil
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
