package store

import (
	"context"
	"sync"
)

const subscriberBuffer = 16

type subscription struct {
	keys map[string]struct{}
	ch   chan Change
}

func (s *subscription) wants(key string) bool {
	if len(s.keys) == 0 {
		return true
	}
	_, ok := s.keys[key]
	return ok
}

// hub fans changes out to in-process subscribers.
type hub struct {
	mu   sync.Mutex
	subs map[*subscription]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[*subscription]struct{})}
}

func (h *hub) subscribe(ctx context.Context, keys []string) <-chan Change {
	sub := &subscription{
		keys: make(map[string]struct{}, len(keys)),
		ch:   make(chan Change, subscriberBuffer),
	}
	for _, k := range keys {
		sub.keys[k] = struct{}{}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, sub)
		close(sub.ch)
		h.mu.Unlock()
	}()

	return sub.ch
}

func (h *hub) publish(c Change) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		if !sub.wants(c.Key) {
			continue
		}
		select {
		case sub.ch <- c:
		default:
		}
	}
}
