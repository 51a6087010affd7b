package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "ping" }

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	var calls int32

	for i := 0; i < 3; i++ {
		bus.Subscribe("ping", func(ctx context.Context, e Event) error {
			atomic.AddInt32(&calls, 1)
			return nil
		})
	}
	bus.Subscribe("other", func(ctx context.Context, e Event) error {
		t.Error("unexpected delivery")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestBus_ListenerFailuresAreContained(t *testing.T) {
	bus := New(zap.NewNop())
	var delivered int32

	bus.Subscribe("ping", func(ctx context.Context, e Event) error { return errors.New("boom") })
	bus.Subscribe("ping", func(ctx context.Context, e Event) error { panic("boom") })
	bus.Subscribe("ping", func(ctx context.Context, e Event) error {
		atomic.AddInt32(&delivered, 1)
		return nil
	})

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), pingEvent{})
		bus.Wait()
	})
	assert.EqualValues(t, 1, atomic.LoadInt32(&delivered))
}
