// Copyright 2024-2026 Aiku AI

// Package puppet declares the pluggable backend contract a chat-bot
// framework calls into: the payload types for contacts, rooms and
// messages, the event envelope format, and the Puppet operation surface
// any backend must provide.
package puppet

import (
	"context"
	"errors"
)

// ErrNotImplemented is returned by contract operations a backend does not
// support. Callers wrap it with the operation name.
var ErrNotImplemented = errors.New("not implemented")

// Puppet is the fixed operation surface the framework expects from any
// backend. All operations are valid only between Start and Stop.
// Event handlers may be registered at any time.
type Puppet interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error

	// SelfID returns the contact id of the bot's own account.
	SelfID() (string, error)
	Login(ctx context.Context, contactID string) error
	Logout(ctx context.Context) error
	// Ding is the contract's health check; the backend answers with a
	// message event.
	Ding(ctx context.Context, data string) error

	ContactList(ctx context.Context) ([]string, error)
	ContactPayload(ctx context.Context, contactID string) (*ContactPayload, error)
	ContactAlias(ctx context.Context, contactID string) (string, error)
	SetContactAlias(ctx context.Context, contactID, alias string) error
	ContactAvatar(ctx context.Context, contactID string) (string, error)
	SetContactAvatar(ctx context.Context, contactID, avatar string) error

	MessagePayload(ctx context.Context, messageID string) (*MessagePayload, error)
	MessageSendText(ctx context.Context, conversationID, text string) (string, error)
	MessageSendFile(ctx context.Context, conversationID, name string) (string, error)
	MessageSendContact(ctx context.Context, conversationID, contactID string) (string, error)

	RoomList(ctx context.Context) ([]string, error)
	RoomPayload(ctx context.Context, roomID string) (*RoomPayload, error)
	RoomCreate(ctx context.Context, memberIDs []string, topic string) (string, error)
	RoomAdd(ctx context.Context, roomID, contactID string) error
	RoomMembers(ctx context.Context, roomID string) ([]string, error)
	RoomTopic(ctx context.Context, roomID string) (string, error)

	TagContactAdd(ctx context.Context, tagID, contactID string) error
	TagContactRemove(ctx context.Context, tagID, contactID string) error
	TagContactDelete(ctx context.Context, tagID string) error
	TagContactList(ctx context.Context, contactID string) ([]string, error)

	OnScan(fn func(ScanEvent))
	OnLogin(fn func(LoginEvent))
	OnLogout(fn func(LogoutEvent))
	OnMessage(fn func(MessageEvent))
	OnRoomJoin(fn func(RoomJoinEvent))
}
