package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event - любое доменное событие.
type Event interface {
	Name() string
}

type Listener func(ctx context.Context, event Event) error

// Bus доставляет события подписчикам в отдельных горутинах; Publish никогда не блокирует вызывающего.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	wg        sync.WaitGroup
	timeout   time.Duration
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		timeout:   time.Minute,
		logger:    logger,
	}
}

func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

func (b *Bus) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[event.Name()]...)
	b.mu.RUnlock()

	for _, listener := range listeners {
		b.wg.Add(1)
		go b.deliver(listener, event)
	}
}

func (b *Bus) deliver(l Listener, event Event) {
	defer b.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("паника в обработчике события", zap.String("event", event.Name()), zap.Any("panic", r))
		}
	}()

	// контекст запроса к этому моменту может быть уже отменён
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	if err := l(ctx, event); err != nil {
		b.logger.Error("Ошибка в обработчике события",
			zap.String("event", event.Name()),
			zap.Error(err),
		)
	}
}

// Wait дожидается завершения уже запущенных обработчиков (остановка сервера, тесты).
func (b *Bus) Wait() {
	b.wg.Wait()
}
