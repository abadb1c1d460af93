// Copyright 2024-2026 Aiku AI

package mock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

// Mocker simulates backend-originated events against a bound environment.
// Test code drives it directly ("the server did X"); every simulated
// event both updates the environment and emits exactly one envelope on
// the stream.
//
// The mocker holds a non-owning reference to its environment; it must be
// bound with Use before any data operation.
type Mocker struct {
	id  string
	log zerolog.Logger

	env       *Environment
	loginUser *puppet.ContactPayload
	loggedIn  bool
	stream    *Stream
}

// NewMocker creates an unbound mocker.
func NewMocker(log zerolog.Logger) *Mocker {
	return &Mocker{
		id:     uuid.NewString(),
		log:    log.With().Str("component", "mocker").Logger(),
		stream: NewStream(log),
	}
}

// ID returns the mocker's instance id.
func (m *Mocker) ID() string { return m.id }

// Stream returns the emission channel all simulated events travel on.
func (m *Mocker) Stream() *Stream { return m.stream }

// Use binds the environment that backs all data operations.
func (m *Mocker) Use(env *Environment) {
	m.env = env
	m.log.Debug().Msg("Environment bound")
}

// Environment returns the bound environment, or ErrNoEnvironment before Use.
func (m *Mocker) Environment() (*Environment, error) {
	if m.env == nil {
		return nil, ErrNoEnvironment
	}
	return m.env, nil
}

// LoginUser returns the current login user payload, or nil when logged out.
func (m *Mocker) LoginUser() *puppet.ContactPayload {
	return m.loginUser.Clone()
}

// IsLoggedIn reports whether a login user is set.
func (m *Mocker) IsLoggedIn() bool {
	return m.loggedIn
}

// ContactHandle wraps a contact id in a handle bound to this mocker.
func (m *Mocker) ContactHandle(contactID string) *Contact {
	return &Contact{id: contactID, mocker: m}
}

// RoomHandle wraps a room id in a handle bound to this mocker.
func (m *Mocker) RoomHandle(roomID string) *Room {
	return &Room{id: roomID, mocker: m}
}

// NewContact creates a fresh random contact in the environment and
// returns its handle. Pure data creation; nothing is emitted.
func (m *Mocker) NewContact() (*Contact, error) {
	env, err := m.Environment()
	if err != nil {
		return nil, err
	}
	payload := env.NewContactPayload()
	return m.ContactHandle(payload.ID), nil
}

// NewRoom creates a fresh random room in the environment and returns its
// handle. Pure data creation; nothing is emitted.
func (m *Mocker) NewRoom(opts RoomOptions) (*Room, error) {
	env, err := m.Environment()
	if err != nil {
		return nil, err
	}
	payload, err := env.NewRoomPayload(opts)
	if err != nil {
		return nil, err
	}
	return m.RoomHandle(payload.ID), nil
}

// Scan simulates the backend presenting a QR code for login.
func (m *Mocker) Scan(qrcode string) error {
	return m.emit(puppet.EventKindScan, puppet.ScanEvent{
		QRCode: qrcode,
		Status: puppet.ScanStatusWaiting,
	})
}

// Login simulates the given contact becoming the session's login user.
// The contact must exist in the environment; on success the mocker's
// login user is set before the event is emitted.
func (m *Mocker) Login(contactID string) error {
	env, err := m.Environment()
	if err != nil {
		return err
	}
	payload, err := env.GetContactPayload(contactID)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	m.loginUser = payload
	m.loggedIn = true
	m.log.Info().Str("contact_id", contactID).Msg("Login user set")
	return m.emit(puppet.EventKindLogin, puppet.LoginEvent{ContactID: contactID})
}

// Logout simulates the login user logging out. It fails with
// ErrNoLoginUser when no one is logged in; otherwise it emits the logout
// event for that user and then clears the login state.
func (m *Mocker) Logout() error {
	if m.loginUser == nil {
		return ErrNoLoginUser
	}
	contactID := m.loginUser.ID
	if err := m.emit(puppet.EventKindLogout, puppet.LogoutEvent{ContactID: contactID}); err != nil {
		return err
	}
	m.loginUser = nil
	m.loggedIn = false
	m.log.Info().Str("contact_id", contactID).Msg("Login user cleared")
	return nil
}

// SendText simulates the talker sending a text message to the conversation.
func (m *Mocker) SendText(talker *Contact, conversation Conversation, text string) (string, error) {
	return m.SendMessage(talker, conversation, puppet.TextContent{Text: text})
}

// SendMessage simulates the talker sending a message to the conversation.
// The destination is routed by the conversation's kind: a contact becomes
// the message's ToID, a room its RoomID. The new message is persisted, a
// message event carrying its id is emitted, and the id is returned.
func (m *Mocker) SendMessage(talker *Contact, conversation Conversation, content puppet.MessageContent) (string, error) {
	env, err := m.Environment()
	if err != nil {
		return "", err
	}
	if _, err := env.GetContactPayload(talker.ID()); err != nil {
		return "", fmt.Errorf("talker lookup failed: %w", err)
	}

	msg := &puppet.MessagePayload{
		ID:        NewMessageID(),
		FromID:    talker.ID(),
		Timestamp: time.Now().UnixMilli(),
		Type:      content.MessageType(),
		Content:   content,
	}
	switch conversation.ConversationKind() {
	case KindContact:
		msg.ToID = conversation.ConversationID()
	case KindRoom:
		if _, err := env.GetRoomPayload(conversation.ConversationID()); err != nil {
			return "", fmt.Errorf("conversation lookup failed: %w", err)
		}
		msg.RoomID = conversation.ConversationID()
	default:
		return "", fmt.Errorf("unsupported conversation kind %s", conversation.ConversationKind())
	}

	env.AddMessagePayload(msg)
	m.log.Debug().
		Str("message_id", msg.ID).
		Str("from_id", msg.FromID).
		Stringer("type", msg.Type).
		Msg("Message stored")

	if err := m.emit(puppet.EventKindMessage, puppet.MessageEvent{MessageID: msg.ID}); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// AddContactToRoom simulates the inviter adding contacts to a room.
// Already-present contacts are skipped, so the operation is idempotent
// per id. An empty inviterID defaults to the login user. One room-join
// event carrying the full invitee list is emitted.
func (m *Mocker) AddContactToRoom(contactIDs []string, roomID, inviterID string) error {
	env, err := m.Environment()
	if err != nil {
		return err
	}
	if inviterID == "" {
		if m.loginUser == nil {
			return ErrNoLoginUser
		}
		inviterID = m.loginUser.ID
	}

	room, err := env.GetRoomPayload(roomID)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(room.MemberIDs))
	for _, id := range room.MemberIDs {
		present[id] = true
	}
	for _, id := range contactIDs {
		if _, err := env.GetContactPayload(id); err != nil {
			return fmt.Errorf("invitee lookup failed: %w", err)
		}
		if present[id] {
			continue
		}
		room.MemberIDs = append(room.MemberIDs, id)
		present[id] = true
	}
	if err := env.UpdateRoomPayload(room); err != nil {
		return err
	}

	return m.emit(puppet.EventKindRoomJoin, puppet.RoomJoinEvent{
		RoomID:     roomID,
		InviterID:  inviterID,
		InviteeIDs: contactIDs,
		Timestamp:  time.Now().UnixMilli(),
	})
}

func (m *Mocker) emit(kind puppet.EventKind, payload any) error {
	envelope, err := puppet.NewEnvelope(kind, payload)
	if err != nil {
		return err
	}
	m.stream.Emit(envelope)
	return nil
}
