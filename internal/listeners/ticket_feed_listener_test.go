package listeners

import (
	"context"
	"sync"
	"testing"

	"smart-gmao/internal/events"
	"smart-gmao/pkg/eventbus"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type recordingHub struct {
	mu    sync.Mutex
	types []string
}

func (h *recordingHub) Broadcast(messageType string, _ interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.types = append(h.types, messageType)
	return nil
}

func TestTicketFeedListener_Broadcasts(t *testing.T) {
	bus := eventbus.New(zap.NewNop())
	hub := &recordingHub{}
	NewTicketFeedListener(hub, zap.NewNop()).Register(bus)

	bus.Publish(context.Background(), events.TicketStatusChangedEvent{TicketID: "t1"})
	bus.Publish(context.Background(), events.TicketDeletedEvent{TicketID: "t1"})
	bus.Wait()

	assert.ElementsMatch(t, []string{events.TicketStatusChanged, events.TicketDeleted}, hub.types)
}
