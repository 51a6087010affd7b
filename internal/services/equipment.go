package services

import (
	"context"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]*entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter entities.EquipmentFilter) ([]*entities.Equipment, error) {
	return s.equipmentRepository.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepository.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, payload.ToEntity(), actorID)
	if err != nil {
		s.logger.Warn("Ошибка при создании оборудования", zap.String("name", payload.Name), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Оборудование успешно создано", zap.String("id", created.ID), zap.String("actorID", actorID))
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	updated, err := s.equipmentRepository.UpdateEquipment(ctx, id, payload)
	if err != nil {
		s.logger.Warn("Ошибка при обновлении оборудования", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	if err := s.equipmentRepository.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Оборудование удалено", zap.String("id", id))
	return nil
}
