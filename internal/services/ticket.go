package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/internal/events"
	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/eventbus"
	"smart-gmao/pkg/filestorage"
	"smart-gmao/pkg/utils"

	"go.uber.org/zap"
)

type TicketServiceInterface interface {
	GetTickets(ctx context.Context, filter entities.TicketFilter) ([]*entities.Ticket, error)
	FindTicket(ctx context.Context, id string) (*entities.Ticket, error)
	GetTicketStats(ctx context.Context) (entities.TicketStats, error)
	CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error)
	UpdateTicket(ctx context.Context, id string, payload dto.UpdateTicketDTO) (*entities.Ticket, error)
	AddComment(ctx context.Context, id string, payload dto.AddCommentDTO) (*entities.Ticket, error)
	AddPhoto(ctx context.Context, id string, file io.Reader, fileName, description string) (*entities.Ticket, error)
	StartIntervention(ctx context.Context, id string) (*entities.Ticket, error)
	FinishIntervention(ctx context.Context, id string, payload dto.FinishInterventionDTO) (*entities.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

type TicketService struct {
	ticketRepository    repositories.TicketRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	files               filestorage.FileStorageInterface
	bus                 *eventbus.Bus
	logger              *zap.Logger
	now                 func() time.Time
}

func NewTicketService(
	ticketRepository repositories.TicketRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	files filestorage.FileStorageInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *TicketService {
	return &TicketService{
		ticketRepository:    ticketRepository,
		equipmentRepository: equipmentRepository,
		files:               files,
		bus:                 bus,
		logger:              logger,
		now:                 time.Now,
	}
}

func (s *TicketService) GetTickets(ctx context.Context, filter entities.TicketFilter) ([]*entities.Ticket, error) {
	return s.ticketRepository.GetTickets(ctx, filter)
}

func (s *TicketService) FindTicket(ctx context.Context, id string) (*entities.Ticket, error) {
	return s.ticketRepository.FindTicket(ctx, id)
}

func (s *TicketService) GetTicketStats(ctx context.Context) (entities.TicketStats, error) {
	return s.ticketRepository.GetTicketStats(ctx)
}

func (s *TicketService) CreateTicket(ctx context.Context, payload dto.CreateTicketDTO) (*entities.Ticket, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, err
	}

	created, err := s.ticketRepository.CreateTicket(ctx, payload.ToEntity(s.now()), actorID)
	if err != nil {
		s.logger.Warn("Ошибка при создании тикета", zap.String("title", payload.Title), zap.Error(err))
		return nil, err
	}
	s.logger.Info("Тикет создан", zap.String("id", created.ID), zap.String("equipmentID", created.EquipmentID))
	s.publish(ctx, events.TicketCreatedEvent{Ticket: created.Clone(), ActorID: actorID})
	return created, nil
}

func (s *TicketService) UpdateTicket(ctx context.Context, id string, payload dto.UpdateTicketDTO) (*entities.Ticket, error) {
	if payload.EquipmentID != nil {
		if err := s.ensureEquipment(ctx, *payload.EquipmentID); err != nil {
			return nil, err
		}
	}

	updated, previous, err := s.ticketRepository.UpdateTicket(ctx, id, payload)
	if err != nil {
		s.logger.Warn("Ошибка при обновлении тикета", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if previous != updated.Status {
		actorID, _ := utils.GetUserIDFromCtx(ctx)
		s.publish(ctx, events.TicketStatusChangedEvent{
			TicketID: updated.ID,
			From:     previous,
			To:       updated.Status,
			ActorID:  actorID,
		})
	}
	return updated, nil
}

func (s *TicketService) AddComment(ctx context.Context, id string, payload dto.AddCommentDTO) (*entities.Ticket, error) {
	actorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	comment := entities.Comment{Author: actorID, Content: payload.Content, Date: s.now()}
	return s.ticketRepository.AddComment(ctx, id, comment)
}

// AddPhoto сохраняет файл и прикрепляет его к тикету; при ошибке записи в хранилище файл удаляется.
func (s *TicketService) AddPhoto(ctx context.Context, id string, file io.Reader, fileName, description string) (*entities.Ticket, error) {
	if s.files == nil {
		return nil, apperrors.NewHttpError(http.StatusServiceUnavailable, "Хранилище файлов не настроено", nil, nil)
	}
	if _, err := s.ticketRepository.FindTicket(ctx, id); err != nil {
		return nil, err
	}

	rule := config.UploadContexts[config.UploadTicketPhoto]
	url, err := s.files.Save(file, fileName, rule.PathPrefix)
	if err != nil {
		s.logger.Error("Не удалось сохранить фото тикета", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	updated, err := s.ticketRepository.AddPhoto(ctx, id, entities.Photo{URL: url, Description: description, AddedAt: s.now()})
	if err != nil {
		if delErr := s.files.Delete(url); delErr != nil {
			s.logger.Warn("Не удалось удалить осиротевший файл", zap.String("url", url), zap.Error(delErr))
		}
		return nil, err
	}
	s.logger.Info("Фото добавлено к тикету", zap.String("id", id), zap.String("url", url))
	return updated, nil
}

func (s *TicketService) StartIntervention(ctx context.Context, id string) (*entities.Ticket, error) {
	status := string(entities.TicketInProgress)
	return s.UpdateTicket(ctx, id, dto.UpdateTicketDTO{Status: &status})
}

func (s *TicketService) FinishIntervention(ctx context.Context, id string, payload dto.FinishInterventionDTO) (*entities.Ticket, error) {
	return s.UpdateTicket(ctx, id, payload.ToUpdate())
}

func (s *TicketService) DeleteTicket(ctx context.Context, id string) error {
	if err := s.ticketRepository.DeleteTicket(ctx, id); err != nil {
		return err
	}
	actorID, _ := utils.GetUserIDFromCtx(ctx)
	s.logger.Info("Тикет удалён", zap.String("id", id), zap.String("actorID", actorID))
	s.publish(ctx, events.TicketDeletedEvent{TicketID: id, ActorID: actorID})
	return nil
}

func (s *TicketService) ensureEquipment(ctx context.Context, equipmentID string) error {
	if _, err := s.equipmentRepository.FindEquipment(ctx, equipmentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationError("equipmentId", "оборудование '%s' не найдено", equipmentID)
		}
		return err
	}
	return nil
}

func (s *TicketService) publish(ctx context.Context, event eventbus.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}
