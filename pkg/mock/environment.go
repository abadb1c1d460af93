// Copyright 2024-2026 Aiku AI

package mock

import (
	"github.com/rs/zerolog"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

// Environment owns the in-memory pools of fake contacts, rooms and
// messages, plus the designated login-user contact. It is the single
// owner of all payload data; the mocker and the puppet adapter only hold
// references to it. Snapshots preserve insertion order.
//
// The environment carries no locking and is not safe for concurrent use;
// a concurrent host must serialize access itself.
type Environment struct {
	gen *Generator
	log zerolog.Logger

	contacts     map[string]*puppet.ContactPayload
	contactOrder []string
	rooms        map[string]*puppet.RoomPayload
	roomOrder    []string
	messages     map[string]*puppet.MessagePayload

	loginUser *puppet.ContactPayload
}

// RoomOptions overrides the random parts of room creation. A non-nil
// MemberIDs replaces the random member sample; a non-empty Topic replaces
// the random topic.
type RoomOptions struct {
	MemberIDs []string
	Topic     string
}

// NewEnvironment builds an environment from the config: it creates the
// login user, then seeds ContactCount contacts and RoomCount rooms.
// The login user is not part of the contact pool.
func NewEnvironment(cfg Config, log zerolog.Logger) *Environment {
	env := &Environment{
		gen:      NewGenerator(cfg.Seed),
		log:      log.With().Str("component", "environment").Logger(),
		contacts: make(map[string]*puppet.ContactPayload),
		rooms:    make(map[string]*puppet.RoomPayload),
		messages: make(map[string]*puppet.MessagePayload),
	}
	env.loginUser = env.gen.Contact()

	for range cfg.ContactCount {
		env.NewContactPayload()
	}
	for range cfg.RoomCount {
		if _, err := env.NewRoomPayload(RoomOptions{}); err != nil {
			env.log.Warn().Err(err).Msg("Skipping room seeding")
			break
		}
	}

	env.log.Debug().
		Int("contacts", len(env.contactOrder)).
		Int("rooms", len(env.roomOrder)).
		Str("login_user", env.loginUser.ID).
		Msg("Environment initialized")
	return env
}

// LoginUserPayload returns the contact designated as the bot's own account.
func (e *Environment) LoginUserPayload() *puppet.ContactPayload {
	return e.loginUser.Clone()
}

// NewContactPayload generates one random contact, inserts it into the
// pool and returns it. It never fails.
func (e *Environment) NewContactPayload() *puppet.ContactPayload {
	payload := e.gen.Contact()
	e.contacts[payload.ID] = payload
	e.contactOrder = append(e.contactOrder, payload.ID)
	return payload.Clone()
}

// NewRoomPayload generates a random room owned by the login user, inserts
// it into the pool and returns it. Members default to a random sample of
// the contact pool; explicit members must all exist. Fails with
// ErrNoContacts while the contact pool is empty.
func (e *Environment) NewRoomPayload(opts RoomOptions) (*puppet.RoomPayload, error) {
	if len(e.contactOrder) == 0 {
		return nil, ErrNoContacts
	}
	members := opts.MemberIDs
	if members == nil {
		members = e.gen.SampleIDs(e.contactOrder)
	} else {
		for _, id := range members {
			if !e.hasContact(id) {
				return nil, &NotFoundError{Kind: KindContact, ID: id}
			}
		}
		members = append([]string(nil), members...)
	}

	room := e.gen.Room(e.loginUser.ID, members)
	if opts.Topic != "" {
		room.Topic = opts.Topic
	}
	e.rooms[room.ID] = room
	e.roomOrder = append(e.roomOrder, room.ID)
	return room.Clone(), nil
}

// hasContact reports whether the id is in the contact pool or is the
// login user.
func (e *Environment) hasContact(id string) bool {
	if _, ok := e.contacts[id]; ok {
		return true
	}
	return id == e.loginUser.ID
}

// GetContactPayload looks up a contact by id. The login user resolves too.
func (e *Environment) GetContactPayload(contactID string) (*puppet.ContactPayload, error) {
	if payload, ok := e.contacts[contactID]; ok {
		return payload.Clone(), nil
	}
	if contactID == e.loginUser.ID {
		return e.loginUser.Clone(), nil
	}
	return nil, &NotFoundError{Kind: KindContact, ID: contactID}
}

// GetRoomPayload looks up a room by id.
func (e *Environment) GetRoomPayload(roomID string) (*puppet.RoomPayload, error) {
	payload, ok := e.rooms[roomID]
	if !ok {
		return nil, &NotFoundError{Kind: KindRoom, ID: roomID}
	}
	return payload.Clone(), nil
}

// GetMessagePayload looks up a message by id.
func (e *Environment) GetMessagePayload(messageID string) (*puppet.MessagePayload, error) {
	payload, ok := e.messages[messageID]
	if !ok {
		return nil, &NotFoundError{Kind: KindMessage, ID: messageID}
	}
	return payload.Clone(), nil
}

// UpdateContactPayload replaces the stored contact keyed by the payload's
// own id. Update is not upsert: an id that was never inserted fails.
func (e *Environment) UpdateContactPayload(payload *puppet.ContactPayload) error {
	if payload.ID == e.loginUser.ID {
		e.loginUser = payload.Clone()
		return nil
	}
	if _, ok := e.contacts[payload.ID]; !ok {
		return &NotFoundError{Kind: KindContact, ID: payload.ID}
	}
	e.contacts[payload.ID] = payload.Clone()
	return nil
}

// UpdateRoomPayload replaces the stored room keyed by the payload's own id.
func (e *Environment) UpdateRoomPayload(payload *puppet.RoomPayload) error {
	if _, ok := e.rooms[payload.ID]; !ok {
		return &NotFoundError{Kind: KindRoom, ID: payload.ID}
	}
	e.rooms[payload.ID] = payload.Clone()
	return nil
}

// AddMessagePayload inserts a message keyed by its own id. Ids are
// caller-generated and assumed unique, so this always succeeds.
func (e *Environment) AddMessagePayload(payload *puppet.MessagePayload) {
	e.messages[payload.ID] = payload.Clone()
}

// ContactPayloads returns a snapshot of the contact pool in insertion order.
func (e *Environment) ContactPayloads() []*puppet.ContactPayload {
	out := make([]*puppet.ContactPayload, 0, len(e.contactOrder))
	for _, id := range e.contactOrder {
		out = append(out, e.contacts[id].Clone())
	}
	return out
}

// RoomPayloads returns a snapshot of the room pool in insertion order.
func (e *Environment) RoomPayloads() []*puppet.RoomPayload {
	out := make([]*puppet.RoomPayload, 0, len(e.roomOrder))
	for _, id := range e.roomOrder {
		out = append(out, e.rooms[id].Clone())
	}
	return out
}
