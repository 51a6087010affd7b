// internal/authz/permissions.go
package authz

// --- СПИСОК ВСЕХ ПЕРМИШЕНОВ В СИСТЕМЕ ---

const (
	// Глобальные
	Superuser = "superuser"

	// Оборудование (Equipments)
	EquipmentsView   = "equipments:view"
	EquipmentsCreate = "equipments:create"
	EquipmentsUpdate = "equipments:update"
	EquipmentsDelete = "equipments:delete"

	// Тикеты (Tickets)
	TicketsView      = "tickets:view"
	TicketsCreate    = "tickets:create"
	TicketsUpdate    = "tickets:update"
	TicketsDelete    = "tickets:delete"
	TicketsComment   = "tickets:comment"
	TicketsIntervene = "tickets:intervene"
)
