package listeners

import (
	"context"
	"errors"
	"sync"
	"testing"

	"smart-gmao/internal/entities"
	"smart-gmao/internal/events"
	"smart-gmao/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestTicketAuditListener_ForwardsToBroker(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	pub := &recordingPublisher{}
	NewTicketAuditListener(pub, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.TicketCreatedEvent{Ticket: &entities.Ticket{ID: "t1"}, ActorID: "u1"})
	bus.Publish(context.Background(), events.TicketStatusChangedEvent{TicketID: "t1", From: entities.TicketPending, To: entities.TicketDone})
	bus.Publish(context.Background(), events.TicketDeletedEvent{TicketID: "t1"})
	bus.Wait()

	assert.ElementsMatch(t, []string{events.TicketCreated, events.TicketStatusChanged, events.TicketDeleted}, pub.keys)
}

func TestTicketAuditListener_WithoutBroker(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	NewTicketAuditListener(nil, zap.NewNop()).Register(bus)

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), events.TicketDeletedEvent{TicketID: "t1"})
		bus.Wait()
	})
}

func TestTicketAuditListener_BrokerFailureIsReturned(t *testing.T) {
	l := NewTicketAuditListener(&recordingPublisher{err: errors.New("down")}, zap.NewNop())
	err := l.handle(context.Background(), events.TicketDeletedEvent{TicketID: "t1"})
	assert.Error(t, err)
}
