package listeners

import (
	"context"

	"smart-gmao/internal/events"
	"smart-gmao/pkg/broker"
	"smart-gmao/pkg/eventbus"

	"go.uber.org/zap"
)

// TicketAuditListener журналирует события тикетов и пересылает их в брокер, если он настроен.
type TicketAuditListener struct {
	publisher broker.Publisher
	logger    *zap.Logger
}

// NewTicketAuditListener: publisher может быть nil, тогда события только логируются.
func NewTicketAuditListener(publisher broker.Publisher, logger *zap.Logger) *TicketAuditListener {
	return &TicketAuditListener{publisher: publisher, logger: logger}
}

func (l *TicketAuditListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{events.TicketCreated, events.TicketStatusChanged, events.TicketDeleted} {
		bus.Subscribe(name, l.handle)
	}
	l.logger.Info("TicketAuditListener подписан на события тикетов", zap.Bool("broker", l.publisher != nil))
}

func (l *TicketAuditListener) handle(ctx context.Context, event eventbus.Event) error {
	switch e := event.(type) {
	case events.TicketCreatedEvent:
		l.logger.Info("тикет создан",
			zap.String("ticketID", e.Ticket.ID),
			zap.String("equipmentID", e.Ticket.EquipmentID),
			zap.String("priority", string(e.Ticket.Priority)),
			zap.String("actorID", e.ActorID),
		)
	case events.TicketStatusChangedEvent:
		l.logger.Info("статус тикета изменён",
			zap.String("ticketID", e.TicketID),
			zap.String("from", string(e.From)),
			zap.String("to", string(e.To)),
			zap.String("actorID", e.ActorID),
		)
	case events.TicketDeletedEvent:
		l.logger.Info("тикет удалён", zap.String("ticketID", e.TicketID), zap.String("actorID", e.ActorID))
	default:
		return nil
	}

	if l.publisher == nil {
		return nil
	}
	return l.publisher.Publish(ctx, event.Name(), event)
}
