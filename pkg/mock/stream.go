// Copyright 2024-2026 Aiku AI

package mock

import (
	"github.com/rs/zerolog"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

// Listener receives every envelope emitted on a stream.
type Listener func(puppet.Envelope)

// Stream is the single-topic emission channel between the mocker and its
// listeners. Every event kind travels on it inside an envelope; listeners
// filter by inspecting the kind. Delivery is synchronous and follows
// registration order.
//
// An emission triggered from inside a listener is queued and drained
// after the current delivery round completes, so re-entrant listeners
// cannot recurse unboundedly. Like the environment, the stream is
// single-threaded and unguarded.
type Stream struct {
	log       zerolog.Logger
	listeners []streamListener
	nextID    int

	emitting bool
	pending  []puppet.Envelope
}

type streamListener struct {
	id int
	fn Listener
}

// NewStream creates an empty stream.
func NewStream(log zerolog.Logger) *Stream {
	return &Stream{log: log.With().Str("component", "stream").Logger()}
}

// Subscribe registers a listener and returns a function that detaches it.
func (s *Stream) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, streamListener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (s *Stream) ListenerCount() int {
	return len(s.listeners)
}

// Emit delivers the envelope to all registered listeners in registration
// order. Nested emits are deferred until the current round finishes.
func (s *Stream) Emit(envelope puppet.Envelope) {
	s.pending = append(s.pending, envelope)
	if s.emitting {
		return
	}
	s.emitting = true
	defer func() { s.emitting = false }()

	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]

		s.log.Debug().
			Stringer("event", next.Kind).
			Int("listeners", len(s.listeners)).
			Msg("Emitting event")

		// Snapshot so listeners can subscribe or detach mid-delivery.
		round := make([]streamListener, len(s.listeners))
		copy(round, s.listeners)
		for _, l := range round {
			l.fn(next)
		}
	}
}
