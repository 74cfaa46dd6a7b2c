package userdata

import (
	"sync"

	"github.com/jbeshir/movie-userdata/internal/domain"
)

// Broker fans store change events out to subscribers.
// Subscribers run synchronously on the mutating goroutine, after the store lock is released.
type Broker struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]func(domain.Event)
}

func NewBroker() *Broker {
	return &Broker{subscribers: map[int]func(domain.Event){}}
}

// Subscribe registers fn and returns a function that removes it again.
func (b *Broker) Subscribe(fn func(domain.Event)) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers, id)
		})
	}
}

func (b *Broker) Publish(e domain.Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	fns := make([]func(domain.Event), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}
