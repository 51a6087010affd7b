package authz

import (
	"testing"

	"smart-gmao/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestGatekeeper_Can(t *testing.T) {
	g := NewGatekeeper()

	testCases := []struct {
		role       entities.Role
		permission string
		want       bool
	}{
		{entities.RoleAdmin, EquipmentsDelete, true},
		{entities.RoleAdmin, TicketsIntervene, true},
		{entities.RoleTechnician, EquipmentsDelete, false},
		{entities.RoleTechnician, TicketsDelete, true},
		{entities.RoleTechnician, TicketsIntervene, true},
		{entities.RoleUser, TicketsCreate, true},
		{entities.RoleUser, TicketsIntervene, false},
		{entities.RoleUser, TicketsDelete, false},
		{entities.Role("ghost"), TicketsView, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+"/"+tc.permission, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Can(tc.role, tc.permission))
		})
	}
}

func TestGatekeeper_RolesWith(t *testing.T) {
	g := NewGatekeeper()

	assert.Equal(t, []entities.Role{entities.RoleAdmin}, g.RolesWith(EquipmentsDelete))
	assert.Equal(t, []entities.Role{entities.RoleAdmin, entities.RoleTechnician}, g.RolesWith(TicketsIntervene))
	assert.Len(t, g.RolesWith(TicketsView), 3)

	for _, perm := range []string{
		EquipmentsView, EquipmentsCreate, EquipmentsUpdate, EquipmentsDelete,
		TicketsView, TicketsCreate, TicketsUpdate, TicketsDelete, TicketsComment, TicketsIntervene,
	} {
		assert.Contains(t, g.RolesWith(perm), entities.RoleAdmin, perm)
	}
	assert.Empty(t, g.RolesWith("reports:view"))
}
