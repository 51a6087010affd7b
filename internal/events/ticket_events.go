package events

import (
	"smart-gmao/internal/entities"
)

const (
	TicketCreated       = "ticket.created"
	TicketStatusChanged = "ticket.status.changed"
	TicketDeleted       = "ticket.deleted"
)

// TicketCreatedEvent - тикет сохранён впервые.
type TicketCreatedEvent struct {
	Ticket  *entities.Ticket `json:"ticket"`
	ActorID string           `json:"actorId"`
}

func (e TicketCreatedEvent) Name() string { return TicketCreated }

// TicketStatusChangedEvent публикуется только если статус действительно изменился.
type TicketStatusChangedEvent struct {
	TicketID string                `json:"ticketId"`
	From     entities.TicketStatus `json:"from"`
	To       entities.TicketStatus `json:"to"`
	ActorID  string                `json:"actorId"`
}

func (e TicketStatusChangedEvent) Name() string { return TicketStatusChanged }

type TicketDeletedEvent struct {
	TicketID string `json:"ticketId"`
	ActorID  string `json:"actorId"`
}

func (e TicketDeletedEvent) Name() string { return TicketDeleted }
