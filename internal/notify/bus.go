package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryBus struct {
	mu          sync.RWMutex
	subscribers map[string]chan Notice
}

func NewBus() *InMemoryBus {
	return &InMemoryBus{
		subscribers: make(map[string]chan Notice),
	}
}

// Publish fans the notice out to every subscriber. Sends are non-blocking; a
// subscriber that stopped draining loses messages rather than stalling the
// publisher.
func (b *InMemoryBus) Publish(n Notice) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Time.IsZero() {
		n.Time = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- n:
		default:
		}
	}
}

func (b *InMemoryBus) Subscribe() (<-chan Notice, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Notice, 64)
	b.subscribers[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if ch, exists := b.subscribers[id]; exists {
			close(ch)
			delete(b.subscribers, id)
		}
	}

	return ch, unsubscribe
}

// Error publishes an error-level notice.
func Error(b Bus, message string) {
	b.Publish(Notice{Level: LevelError, Message: message})
}

// Success publishes a success-level notice.
func Success(b Bus, message string) {
	b.Publish(Notice{Level: LevelSuccess, Message: message})
}

// FieldError publishes a validation notice tied to an input field.
func FieldError(b Bus, field string, message string) {
	b.Publish(Notice{Level: LevelError, Field: field, Message: message})
}
