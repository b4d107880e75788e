// Package broadcast provides a named-channel pub/sub registry: many
// independent topics, each multiplexed to any number of subscribers.
//
// Internally every channel is one rx.PublishSubject; Hub only adds the
// channel-name indirection and the uuid-keyed subscriber bookkeeping a
// caller needs to unsubscribe without holding onto the rx.Observable
// handle itself.
package broadcast

import (
	"sync"

	"github.com/google/uuid"

	"github.com/streamkit/rxstream/rx"
)

type subscription[T any] struct {
	channel string
	obs     rx.Observable[T]
}

// Hub multiplexes messages of type T across any number of named channels.
// Safe for concurrent use.
type Hub[T any] struct {
	mu       sync.RWMutex
	channels map[string]rx.Subject[T]
	subs     map[string]subscription[T]
	closed   bool
}

// NewHub returns an empty Hub. Channels are created lazily on first
// Subscribe or Publish.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		channels: make(map[string]rx.Subject[T]),
		subs:     make(map[string]subscription[T]),
	}
}

// Subscribe returns a subscriber id and an Observable onto channel,
// creating the channel if it doesn't exist yet. New subscribers only see
// messages published after they subscribe.
func (h *Hub[T]) Subscribe(channel string) (string, rx.Observable[T], error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return "", rx.Observable[T]{}, ErrHubClosed{}
	}

	subj, ok := h.channels[channel]
	if !ok {
		subj = rx.NewPublishSubject[T]()
		h.channels[channel] = subj
	}

	obs := subj.Subscribe()
	id := uuid.New().String()
	h.subs[id] = subscription[T]{channel: channel, obs: obs}
	return id, obs, nil
}

// Publish sends msg to every current subscriber of channel. Publishing to
// a channel with no subscribers is a no-op, not an error, so producers
// don't need to know whether anyone is listening yet.
func (h *Hub[T]) Publish(channel string, msg T) error {
	h.mu.RLock()
	if h.closed {
		h.mu.RUnlock()
		return ErrHubClosed{}
	}
	subj, ok := h.channels[channel]
	h.mu.RUnlock()

	if !ok {
		return nil
	}
	subj.Next(msg)
	return nil
}

// Unsubscribe retires a subscriber id. Safe to call more than once.
func (h *Hub[T]) Unsubscribe(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subs[id]
	if !ok {
		return nil
	}
	sub.obs.Close()
	delete(h.subs, id)
	return nil
}

// Close closes every channel and retires every subscriber. After Close,
// Subscribe and Publish return ErrHubClosed.
func (h *Hub[T]) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	for _, subj := range h.channels {
		subj.Close()
	}
	for id := range h.subs {
		delete(h.subs, id)
	}
	return nil
}
