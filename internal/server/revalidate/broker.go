// Package revalidate implements the process-wide view-invalidation signal: a
// fire-and-forget notification keyed by view path telling cached renderings
// to refetch on next access. Purely advisory: no acknowledgement, no
// ordering across concurrent signals, no persistence.
package revalidate

import "sync"

// Subscription receives invalidated view paths. The channel is buffered; a
// subscriber that falls behind loses signals rather than blocking mutations.
type Subscription struct {
	C chan string
}

// Broker fans invalidation signals out to subscribers.
type Broker struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[*Subscription]struct{})}
}

// Subscribe registers a new listener.
func (b *Broker) Subscribe() *Subscription {
	sub := &Subscription{C: make(chan string, 64)}
	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()
	return sub
}

// Unsubscribe removes a listener and closes its channel.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.C)
	}
	b.mu.Unlock()
}

// Invalidate signals that the cached render of path is stale. Non-blocking:
// slow subscribers are skipped.
func (b *Broker) Invalidate(paths ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, path := range paths {
		for sub := range b.subs {
			select {
			case sub.C <- path:
			default:
			}
		}
	}
}
