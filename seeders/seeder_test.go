package seeders

import (
	"context"
	"testing"

	"smart-gmao/internal/entities"
	"smart-gmao/internal/repositories"
	"smart-gmao/pkg/config"
	"smart-gmao/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeeder_RunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepository()
	equipments := repositories.NewMemoryEquipmentRepository()
	tickets := repositories.NewMemoryTicketRepository()
	cfg := config.SeedConfig{AdminEmail: "admin@smartgmao.com", AdminPassword: "admin123"}

	s := New(users, equipments, tickets, cfg, zap.NewNop())
	require.NoError(t, s.Run(ctx, Options{Admin: true, Samples: true}))
	require.NoError(t, s.Run(ctx, Options{Admin: true, Samples: true}))

	admin, err := users.FindUserByEmail(ctx, "admin@smartgmao.com")
	require.NoError(t, err)
	assert.Equal(t, entities.RoleAdmin, admin.Role)
	assert.Equal(t, "Derradji", admin.LastName)
	assert.NoError(t, utils.ComparePasswords(admin.Password, "admin123"))

	list, err := equipments.GetEquipments(ctx, entities.EquipmentFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 4)

	stats, err := tickets.GetTicketStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.ByStatus[entities.TicketInProgress])

	all, err := tickets.GetTickets(ctx, entities.TicketFilter{})
	require.NoError(t, err)
	for _, tk := range all {
		assert.NotEmpty(t, tk.EquipmentID)
		assert.Equal(t, admin.ID, tk.CreatedBy)
	}
}
