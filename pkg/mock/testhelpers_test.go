// Copyright 2024-2026 Aiku AI

package mock

import (
	"github.com/rs/zerolog"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

// newTestEnv creates a deterministic environment with the given number of
// contacts and no rooms.
func newTestEnv(contactCount int) *Environment {
	return NewEnvironment(Config{ContactCount: contactCount, Seed: 42}, zerolog.Nop())
}

// newBoundMocker creates a mocker bound to a fresh test environment.
func newBoundMocker(contactCount int) (*Mocker, *Environment) {
	env := newTestEnv(contactCount)
	m := NewMocker(zerolog.Nop())
	m.Use(env)
	return m, env
}

// envelopeCollector records every envelope emitted on a stream.
type envelopeCollector struct {
	envelopes []puppet.Envelope
}

func (c *envelopeCollector) listen(envelope puppet.Envelope) {
	c.envelopes = append(c.envelopes, envelope)
}

// collect attaches a collector to the mocker's stream.
func collect(m *Mocker) *envelopeCollector {
	c := &envelopeCollector{}
	m.Stream().Subscribe(c.listen)
	return c
}

// ofKind returns the collected envelopes of one kind.
func (c *envelopeCollector) ofKind(kind puppet.EventKind) []puppet.Envelope {
	var out []puppet.Envelope
	for _, envelope := range c.envelopes {
		if envelope.Kind == kind {
			out = append(out, envelope)
		}
	}
	return out
}
