// Copyright 2024-2026 Aiku AI

package mock

import (
	"strings"

	"github.com/google/uuid"
)

// EntityKind discriminates the entity namespaces of the environment.
// Callers dispatch on it instead of inspecting id strings.
type EntityKind int

const (
	KindUnknown EntityKind = iota
	KindContact
	KindRoom
	KindMessage
)

func (k EntityKind) String() string {
	switch k {
	case KindContact:
		return "contact"
	case KindRoom:
		return "room"
	case KindMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Entity ids are namespaced by kind via these prefixes. The convention is
// confined to this file; everything else goes through KindOfID.
const (
	contactIDPrefix = "contact-"
	roomIDPrefix    = "room-"
	messageIDPrefix = "message-"
)

// NewContactID generates a fresh contact id.
func NewContactID() string {
	return contactIDPrefix + uuid.NewString()
}

// NewRoomID generates a fresh room id.
func NewRoomID() string {
	return roomIDPrefix + uuid.NewString()
}

// NewMessageID generates a fresh message id.
func NewMessageID() string {
	return messageIDPrefix + uuid.NewString()
}

// KindOfID resolves the entity kind an id belongs to.
func KindOfID(id string) EntityKind {
	switch {
	case strings.HasPrefix(id, contactIDPrefix):
		return KindContact
	case strings.HasPrefix(id, roomIDPrefix):
		return KindRoom
	case strings.HasPrefix(id, messageIDPrefix):
		return KindMessage
	default:
		return KindUnknown
	}
}
