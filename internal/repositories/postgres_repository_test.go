package repositories

import (
	"context"
	"os"
	"testing"

	"smart-gmao/internal/dto"
	"smart-gmao/internal/entities"
	"smart-gmao/pkg/database/postgresql"
	apperrors "smart-gmao/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// PostgresRepositoryTestSuite гоняет репозитории на реальной БД из TEST_DATABASE_URL.
type PostgresRepositoryTestSuite struct {
	suite.Suite
	DB         *pgxpool.Pool
	Equipments EquipmentRepositoryInterface
	Tickets    TicketRepositoryInterface
	Users      UserRepositoryInterface
}

func TestPostgresRepositories(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL не задан, пропускаем интеграционные тесты PostgreSQL")
	}
	suite.Run(t, new(PostgresRepositoryTestSuite))
}

func (s *PostgresRepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_URL")
	logger := zap.NewNop()

	require.NoError(s.T(), postgresql.Migrate(dsn, logger))
	pool, err := postgresql.ConnectDB(context.Background(), dsn, logger)
	require.NoError(s.T(), err)

	s.DB = pool
	s.Equipments = NewEquipmentRepository(pool, logger)
	s.Tickets = NewTicketRepository(pool, logger)
	s.Users = NewUserRepository(pool, logger)
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	_, err := s.DB.Exec(context.Background(), "TRUNCATE tickets, equipments, users")
	require.NoError(s.T(), err)
}

func (s *PostgresRepositoryTestSuite) TearDownSuite() {
	if s.DB != nil {
		s.DB.Close()
	}
}

func (s *PostgresRepositoryTestSuite) TestEquipmentRoundTrip() {
	ctx := context.Background()
	serial := "SN-" + uuid.NewString()

	created, err := s.Equipments.CreateEquipment(ctx, newPump(&serial), "user-1")
	s.Require().NoError(err)
	s.NotNil(created.NextMaintenance)

	_, err = s.Equipments.CreateEquipment(ctx, newPump(&serial), "user-1")
	var conflict *apperrors.ConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal("serialNumber", conflict.Field)

	updated, err := s.Equipments.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{Location: ptr("Atelier B")})
	s.Require().NoError(err)
	s.Equal("Atelier B", updated.Location)
	s.Equal(serial, *updated.SerialNumber)

	list, err := s.Equipments.GetEquipments(ctx, entities.EquipmentFilter{Category: entities.CategoryIndustrialMachine})
	s.Require().NoError(err)
	s.Len(list, 1)

	s.Require().NoError(s.Equipments.DeleteEquipment(ctx, created.ID))
	s.ErrorIs(s.Equipments.DeleteEquipment(ctx, created.ID), apperrors.ErrNotFound)
}

func (s *PostgresRepositoryTestSuite) TestTicketJSONBAndStats() {
	ctx := context.Background()

	tk := newTicket("eq-1", entities.TicketPriorityHigh)
	tk.PartsUsed = []entities.PartUsed{{Name: "Joint", Quantity: 2, UnitCost: 4.5}}
	created, err := s.Tickets.CreateTicket(ctx, tk, "user-1")
	s.Require().NoError(err)

	withComment, err := s.Tickets.AddComment(ctx, created.ID, entities.Comment{Author: "user-1", Content: "ok"})
	s.Require().NoError(err)
	s.Require().Len(withComment.Comments, 1)
	s.Require().Len(withComment.PartsUsed, 1)
	s.Equal(2, withComment.PartsUsed[0].Quantity)

	done, _, err := s.Tickets.UpdateTicket(ctx, created.ID, dto.UpdateTicketDTO{Status: ptr("done")})
	s.Require().NoError(err)
	s.NotNil(done.EndDate)

	stats, err := s.Tickets.GetTicketStats(ctx)
	s.Require().NoError(err)
	s.Equal(1, stats.Total)
	s.Equal(1, stats.ByStatus[entities.TicketDone])
	s.Equal(0, stats.ByStatus[entities.TicketPending])
	s.Equal(1, stats.ByPriority[entities.TicketPriorityHigh])
}

func (s *PostgresRepositoryTestSuite) TestUserEmailUnique() {
	ctx := context.Background()
	u := &entities.User{LastName: "Derradji", FirstName: "Imad", Email: "admin@smartgmao.com", Password: "hash"}

	created, err := s.Users.CreateUser(ctx, u)
	s.Require().NoError(err)

	_, err = s.Users.CreateUser(ctx, u)
	assert.ErrorIs(s.T(), err, apperrors.ErrConflict)

	found, err := s.Users.FindUserByEmail(ctx, "ADMIN@smartgmao.com")
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.True(found.IsActive)

	disabled, err := s.Users.SetUserActive(ctx, created.ID, false)
	s.Require().NoError(err)
	s.False(disabled.IsActive)

	_, err = s.Users.SetUserActive(ctx, "00000000-0000-0000-0000-000000000000", true)
	assert.ErrorIs(s.T(), err, apperrors.ErrNotFound)
}
