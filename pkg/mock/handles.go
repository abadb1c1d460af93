// Copyright 2024-2026 Aiku AI

package mock

import (
	"github.com/aiku/puppet-mock/pkg/puppet"
)

// Conversation is a message destination: a direct contact or a room. The
// kind discriminant drives destination routing, so call sites never sniff
// id strings.
type Conversation interface {
	ConversationID() string
	ConversationKind() EntityKind
}

// Contact is a lightweight handle to one contact in the environment.
type Contact struct {
	id     string
	mocker *Mocker
}

// ID returns the contact id.
func (c *Contact) ID() string { return c.id }

func (c *Contact) ConversationID() string       { return c.id }
func (c *Contact) ConversationKind() EntityKind { return KindContact }

// Payload resolves the full contact payload from the environment.
func (c *Contact) Payload() (*puppet.ContactPayload, error) {
	env, err := c.mocker.Environment()
	if err != nil {
		return nil, err
	}
	return env.GetContactPayload(c.id)
}

// Room is a lightweight handle to one room in the environment.
type Room struct {
	id     string
	mocker *Mocker
}

// ID returns the room id.
func (r *Room) ID() string { return r.id }

func (r *Room) ConversationID() string       { return r.id }
func (r *Room) ConversationKind() EntityKind { return KindRoom }

// Payload resolves the full room payload from the environment.
func (r *Room) Payload() (*puppet.RoomPayload, error) {
	env, err := r.mocker.Environment()
	if err != nil {
		return nil, err
	}
	return env.GetRoomPayload(r.id)
}

// Topic returns the room's current topic.
func (r *Room) Topic() (string, error) {
	payload, err := r.Payload()
	if err != nil {
		return "", err
	}
	return payload.Topic, nil
}

// MemberIDs returns the room's current member ids.
func (r *Room) MemberIDs() ([]string, error) {
	payload, err := r.Payload()
	if err != nil {
		return nil, err
	}
	return payload.MemberIDs, nil
}

// Members returns contact handles for the room's current members.
func (r *Room) Members() ([]*Contact, error) {
	ids, err := r.MemberIDs()
	if err != nil {
		return nil, err
	}
	members := make([]*Contact, 0, len(ids))
	for _, id := range ids {
		members = append(members, r.mocker.ContactHandle(id))
	}
	return members, nil
}
