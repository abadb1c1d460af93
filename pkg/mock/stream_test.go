// Copyright 2024-2026 Aiku AI

package mock

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

func TestStreamDeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()
	s := NewStream(zerolog.Nop())

	var order []string
	s.Subscribe(func(puppet.Envelope) { order = append(order, "first") })
	s.Subscribe(func(puppet.Envelope) { order = append(order, "second") })
	s.Subscribe(func(puppet.Envelope) { order = append(order, "third") })

	s.Emit(puppet.Envelope{Kind: puppet.EventKindScan})

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("deliveries: got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("delivery[%d]: got %q, want %q", i, order[i], want[i])
		}
	}
}

func TestStreamUnsubscribe(t *testing.T) {
	t.Parallel()
	s := NewStream(zerolog.Nop())

	var got int
	unsubscribe := s.Subscribe(func(puppet.Envelope) { got++ })

	s.Emit(puppet.Envelope{Kind: puppet.EventKindLogin})
	unsubscribe()
	s.Emit(puppet.Envelope{Kind: puppet.EventKindLogin})

	if got != 1 {
		t.Errorf("deliveries after unsubscribe: got %d, want 1", got)
	}
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount: got %d, want 0", s.ListenerCount())
	}
}

func TestStreamUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()
	s := NewStream(zerolog.Nop())
	unsubscribeA := s.Subscribe(func(puppet.Envelope) {})
	s.Subscribe(func(puppet.Envelope) {})

	unsubscribeA()
	unsubscribeA()

	if s.ListenerCount() != 1 {
		t.Errorf("ListenerCount: got %d, want 1", s.ListenerCount())
	}
}

// A listener that emits again must not recurse; the nested envelope is
// queued and delivered after the current round.
func TestStreamReentrantEmitIsDeferred(t *testing.T) {
	t.Parallel()
	s := NewStream(zerolog.Nop())

	var seen []puppet.EventKind
	s.Subscribe(func(envelope puppet.Envelope) {
		seen = append(seen, envelope.Kind)
		if envelope.Kind == puppet.EventKindScan {
			s.Emit(puppet.Envelope{Kind: puppet.EventKindLogin})
		}
	})
	var other []puppet.EventKind
	s.Subscribe(func(envelope puppet.Envelope) {
		other = append(other, envelope.Kind)
	})

	s.Emit(puppet.Envelope{Kind: puppet.EventKindScan})

	wantSeen := []puppet.EventKind{puppet.EventKindScan, puppet.EventKindLogin}
	if len(seen) != 2 || seen[0] != wantSeen[0] || seen[1] != wantSeen[1] {
		t.Errorf("re-entrant listener saw %v, want %v", seen, wantSeen)
	}
	// The second listener must see the scan before the nested login.
	if len(other) != 2 || other[0] != puppet.EventKindScan || other[1] != puppet.EventKindLogin {
		t.Errorf("second listener saw %v, want [scan login]", other)
	}
}

func TestStreamSubscribeDuringDelivery(t *testing.T) {
	t.Parallel()
	s := NewStream(zerolog.Nop())

	var late int
	s.Subscribe(func(puppet.Envelope) {
		s.Subscribe(func(puppet.Envelope) { late++ })
	})

	s.Emit(puppet.Envelope{Kind: puppet.EventKindScan})
	if late != 0 {
		t.Errorf("listener added mid-delivery ran %d times in the same round", late)
	}

	s.Emit(puppet.Envelope{Kind: puppet.EventKindScan})
	if late != 1 {
		t.Errorf("listener added mid-delivery: got %d deliveries, want 1", late)
	}
}
