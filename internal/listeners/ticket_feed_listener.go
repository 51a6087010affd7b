package listeners

import (
	"context"

	"smart-gmao/internal/events"
	"smart-gmao/pkg/eventbus"

	"go.uber.org/zap"
)

type broadcaster interface {
	Broadcast(messageType string, payload interface{}) error
}

// TicketFeedListener транслирует события тикетов подключённым WebSocket-клиентам.
type TicketFeedListener struct {
	hub    broadcaster
	logger *zap.Logger
}

func NewTicketFeedListener(hub broadcaster, logger *zap.Logger) *TicketFeedListener {
	return &TicketFeedListener{hub: hub, logger: logger}
}

func (l *TicketFeedListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{events.TicketCreated, events.TicketStatusChanged, events.TicketDeleted} {
		bus.Subscribe(name, l.handle)
	}
}

func (l *TicketFeedListener) handle(_ context.Context, event eventbus.Event) error {
	if err := l.hub.Broadcast(event.Name(), event); err != nil {
		l.logger.Error("TicketFeedListener: ошибка рассылки", zap.String("event", event.Name()), zap.Error(err))
		return err
	}
	return nil
}
