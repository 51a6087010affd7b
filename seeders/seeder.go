// Файл: seeders/seeder.go
package seeders

import (
	"context"
	"errors"
	"fmt"

	"smart-gmao/internal/entities"
	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"
	"smart-gmao/pkg/utils"

	"go.uber.org/zap"
)

type Options struct {
	Admin   bool
	Samples bool
}

type Seeder struct {
	users      repositories.UserRepositoryInterface
	equipments repositories.EquipmentRepositoryInterface
	tickets    repositories.TicketRepositoryInterface
	cfg        config.SeedConfig
	logger     *zap.Logger
}

func New(
	users repositories.UserRepositoryInterface,
	equipments repositories.EquipmentRepositoryInterface,
	tickets repositories.TicketRepositoryInterface,
	cfg config.SeedConfig,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{users: users, equipments: equipments, tickets: tickets, cfg: cfg, logger: logger}
}

// Run идемпотентен: существующий администратор и непустой список оборудования не трогаются.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	if !opts.Admin && !opts.Samples {
		return nil
	}
	// демо-тикетам нужен автор, поэтому администратор создаётся и для -samples
	admin, err := s.SeedAdmin(ctx)
	if err != nil {
		return err
	}
	if !opts.Samples {
		return nil
	}
	return s.SeedSamples(ctx, admin.ID)
}

func (s *Seeder) SeedAdmin(ctx context.Context) (*entities.User, error) {
	existing, err := s.users.FindUserByEmail(ctx, s.cfg.AdminEmail)
	if err == nil {
		s.logger.Info("сидер: администратор уже существует, пропускаем", zap.String("email", existing.Email))
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("ошибка при проверке существования администратора: %w", err)
	}

	hash, err := utils.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	admin, err := s.users.CreateUser(ctx, &entities.User{
		LastName:  adminLastName,
		FirstName: adminFirstName,
		Email:     s.cfg.AdminEmail,
		Password:  hash,
		Role:      entities.RoleAdmin,
		IsActive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось создать администратора: %w", err)
	}
	s.logger.Info("сидер: администратор создан", zap.String("email", admin.Email))
	return admin, nil
}

func (s *Seeder) SeedSamples(ctx context.Context, actorID string) error {
	current, err := s.equipments.GetEquipments(ctx, entities.EquipmentFilter{})
	if err != nil {
		return err
	}
	if len(current) > 0 {
		s.logger.Info("сидер: оборудование уже есть, демо-данные пропущены", zap.Int("count", len(current)))
		return nil
	}

	ids := make(map[string]string)
	for _, sample := range sampleEquipments() {
		created, err := s.equipments.CreateEquipment(ctx, sample, actorID)
		if err != nil {
			return fmt.Errorf("не удалось создать оборудование '%s': %w", sample.Name, err)
		}
		ids[created.Name] = created.ID
	}

	for _, sample := range sampleTickets() {
		t := sample.ticket
		t.EquipmentID = ids[sample.equipment]
		if _, err := s.tickets.CreateTicket(ctx, t, actorID); err != nil {
			return fmt.Errorf("не удалось создать тикет '%s': %w", t.Title, err)
		}
	}

	s.logger.Info("сидер: демо-данные загружены", zap.Int("equipments", len(ids)))
	return nil
}
