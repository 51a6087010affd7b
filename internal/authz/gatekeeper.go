package authz

import (
	"smart-gmao/internal/entities"
)

var basePermissions = []string{
	EquipmentsView, EquipmentsCreate, EquipmentsUpdate,
	TicketsView, TicketsCreate, TicketsUpdate, TicketsComment,
}

// Gatekeeper хранит набор пермишенов для каждой роли.
type Gatekeeper struct {
	perms map[entities.Role]map[string]bool
}

// NewGatekeeper: admin - superuser, technician дополнительно ведёт работы и удаляет тикеты.
func NewGatekeeper() *Gatekeeper {
	g := &Gatekeeper{perms: make(map[entities.Role]map[string]bool, len(entities.Roles))}
	g.grant(entities.RoleAdmin, Superuser)
	g.grant(entities.RoleTechnician, basePermissions...)
	g.grant(entities.RoleTechnician, TicketsIntervene, TicketsDelete)
	g.grant(entities.RoleUser, basePermissions...)
	return g
}

func (g *Gatekeeper) grant(role entities.Role, permissions ...string) {
	if g.perms[role] == nil {
		g.perms[role] = make(map[string]bool)
	}
	for _, p := range permissions {
		g.perms[role][p] = true
	}
}

func (g *Gatekeeper) Can(role entities.Role, permission string) bool {
	perms := g.perms[role]
	return perms[Superuser] || perms[permission]
}

// RolesWith возвращает роли, которым разрешено действие, в порядке entities.Roles.
func (g *Gatekeeper) RolesWith(permission string) []entities.Role {
	var roles []entities.Role
	for _, role := range entities.Roles {
		if g.Can(role, permission) {
			roles = append(roles, role)
		}
	}
	return roles
}
