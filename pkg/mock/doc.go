// Copyright 2024-2026 Aiku AI

// Package mock implements an in-process test double for the puppet
// contract: a synthetic data environment, an event simulator, and a
// puppet adapter that plugs the two into a bot framework.
//
// # Core Types
//
// [Environment] owns the in-memory payload pools (contacts, rooms,
// messages) and serves CRUD-style queries with referential consistency.
// Its randomness comes from a seedable [Generator], so tests can pin the
// generated data.
//
// [Mocker] wraps one environment and exposes imperative methods that
// simulate backend-originated events: new messages, logins, logouts,
// QR scans, room joins. Every simulation both mutates the environment
// and emits one envelope on the mocker's [Stream], where all listeners
// register uniformly and filter by event kind.
//
// [PuppetMock] implements [puppet.Puppet] by delegating to the mocker
// and re-publishing stream envelopes as the framework's named events.
// Test code drives the mocker ("the server did X") while the framework
// drives the puppet ("the bot asks the backend to do Y"); both views
// share the same environment.
//
// Everything here is single-threaded. There is no locking, no real
// transport and no persistence; a concurrent host must serialize access.
package mock
