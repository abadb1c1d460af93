// Copyright 2024-2026 Aiku AI

package mock

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

// Options configures a PuppetMock.
type Options struct {
	// Mocker is required; the puppet performs every operation through it.
	Mocker *Mocker
	// Name defaults to "puppet-mock".
	Name string
	Log  zerolog.Logger
}

// PuppetMock implements the puppet contract on top of a mocker instead of
// a live backend connection. It re-publishes the mocker's stream
// envelopes as the framework's named events while started, and delegates
// every contract operation to the mocker or its environment.
type PuppetMock struct {
	name   string
	mocker *Mocker
	log    zerolog.Logger

	started     bool
	unsubscribe func()

	onScan     []func(puppet.ScanEvent)
	onLogin    []func(puppet.LoginEvent)
	onLogout   []func(puppet.LogoutEvent)
	onMessage  []func(puppet.MessageEvent)
	onRoomJoin []func(puppet.RoomJoinEvent)
}

var _ puppet.Puppet = (*PuppetMock)(nil)

// NewPuppetMock creates a puppet backed by the given mocker.
func NewPuppetMock(opts Options) (*PuppetMock, error) {
	if opts.Mocker == nil {
		return nil, errors.New("puppet mock requires a mocker")
	}
	name := opts.Name
	if name == "" {
		name = "puppet-mock"
	}
	return &PuppetMock{
		name:   name,
		mocker: opts.Mocker,
		log:    opts.Log.With().Str("component", "puppet").Str("puppet", name).Logger(),
	}, nil
}

// Name returns the puppet's name.
func (p *PuppetMock) Name() string { return p.name }

// IsStarted reports whether the puppet is in the started state.
func (p *PuppetMock) IsStarted() bool { return p.started }

// Start subscribes the puppet to the mocker's stream and enables the
// contract operations. Starting an already-started puppet is a no-op.
func (p *PuppetMock) Start(_ context.Context) error {
	if p.started {
		return nil
	}
	p.started = true
	p.unsubscribe = p.mocker.Stream().Subscribe(p.handleEnvelope)
	p.log.Info().Msg("Puppet started")
	return nil
}

// Stop detaches the puppet from the mocker's stream and disables the
// contract operations.
func (p *PuppetMock) Stop(_ context.Context) error {
	if !p.started {
		return nil
	}
	p.started = false
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.log.Info().Msg("Puppet stopped")
	return nil
}

func (p *PuppetMock) requireStarted() error {
	if !p.started {
		return ErrNotStarted
	}
	return nil
}

// handleEnvelope translates a stream envelope into the framework's named
// events. The started flag guards translation as well, so a puppet that
// was stopped mid-delivery drops the event instead of forwarding it.
func (p *PuppetMock) handleEnvelope(envelope puppet.Envelope) {
	if !p.started {
		return
	}
	switch envelope.Kind {
	case puppet.EventKindScan:
		var evt puppet.ScanEvent
		if err := envelope.Decode(&evt); err != nil {
			p.log.Warn().Err(err).Msg("Failed to decode scan event")
			return
		}
		for _, fn := range p.onScan {
			fn(evt)
		}
	case puppet.EventKindLogin:
		var evt puppet.LoginEvent
		if err := envelope.Decode(&evt); err != nil {
			p.log.Warn().Err(err).Msg("Failed to decode login event")
			return
		}
		for _, fn := range p.onLogin {
			fn(evt)
		}
	case puppet.EventKindLogout:
		var evt puppet.LogoutEvent
		if err := envelope.Decode(&evt); err != nil {
			p.log.Warn().Err(err).Msg("Failed to decode logout event")
			return
		}
		for _, fn := range p.onLogout {
			fn(evt)
		}
	case puppet.EventKindMessage:
		var evt puppet.MessageEvent
		if err := envelope.Decode(&evt); err != nil {
			p.log.Warn().Err(err).Msg("Failed to decode message event")
			return
		}
		for _, fn := range p.onMessage {
			fn(evt)
		}
	case puppet.EventKindRoomJoin:
		var evt puppet.RoomJoinEvent
		if err := envelope.Decode(&evt); err != nil {
			p.log.Warn().Err(err).Msg("Failed to decode room-join event")
			return
		}
		for _, fn := range p.onRoomJoin {
			fn(evt)
		}
	default:
		p.log.Trace().Stringer("event", envelope.Kind).Msg("Unhandled event kind")
	}
}

func (p *PuppetMock) OnScan(fn func(puppet.ScanEvent))         { p.onScan = append(p.onScan, fn) }
func (p *PuppetMock) OnLogin(fn func(puppet.LoginEvent))       { p.onLogin = append(p.onLogin, fn) }
func (p *PuppetMock) OnLogout(fn func(puppet.LogoutEvent))     { p.onLogout = append(p.onLogout, fn) }
func (p *PuppetMock) OnMessage(fn func(puppet.MessageEvent))   { p.onMessage = append(p.onMessage, fn) }
func (p *PuppetMock) OnRoomJoin(fn func(puppet.RoomJoinEvent)) { p.onRoomJoin = append(p.onRoomJoin, fn) }

// SelfID returns the login user's contact id.
func (p *PuppetMock) SelfID() (string, error) {
	if err := p.requireStarted(); err != nil {
		return "", err
	}
	user := p.mocker.LoginUser()
	if user == nil {
		return "", ErrNoLoginUser
	}
	return user.ID, nil
}

func (p *PuppetMock) Login(_ context.Context, contactID string) error {
	if err := p.requireStarted(); err != nil {
		return err
	}
	return p.mocker.Login(contactID)
}

func (p *PuppetMock) Logout(_ context.Context) error {
	if err := p.requireStarted(); err != nil {
		return err
	}
	return p.mocker.Logout()
}

// Ding answers the contract's health check by sending the data (default
// "dong") as a text message from the login user to itself.
func (p *PuppetMock) Ding(ctx context.Context, data string) error {
	selfID, err := p.SelfID()
	if err != nil {
		return err
	}
	if data == "" {
		data = "dong"
	}
	_, err = p.MessageSendText(ctx, selfID, data)
	return err
}

func (p *PuppetMock) ContactList(_ context.Context) ([]string, error) {
	if err := p.requireStarted(); err != nil {
		return nil, err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return nil, err
	}
	payloads := env.ContactPayloads()
	ids := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		ids = append(ids, payload.ID)
	}
	return ids, nil
}

func (p *PuppetMock) ContactPayload(_ context.Context, contactID string) (*puppet.ContactPayload, error) {
	if err := p.requireStarted(); err != nil {
		return nil, err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return nil, err
	}
	return env.GetContactPayload(contactID)
}

func (p *PuppetMock) ContactAlias(ctx context.Context, contactID string) (string, error) {
	payload, err := p.ContactPayload(ctx, contactID)
	if err != nil {
		return "", err
	}
	return payload.Alias, nil
}

func (p *PuppetMock) SetContactAlias(ctx context.Context, contactID, alias string) error {
	payload, err := p.ContactPayload(ctx, contactID)
	if err != nil {
		return err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return err
	}
	payload.Alias = alias
	return env.UpdateContactPayload(payload)
}

func (p *PuppetMock) ContactAvatar(ctx context.Context, contactID string) (string, error) {
	payload, err := p.ContactPayload(ctx, contactID)
	if err != nil {
		return "", err
	}
	return payload.Avatar, nil
}

func (p *PuppetMock) SetContactAvatar(ctx context.Context, contactID, avatar string) error {
	payload, err := p.ContactPayload(ctx, contactID)
	if err != nil {
		return err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return err
	}
	payload.Avatar = avatar
	return env.UpdateContactPayload(payload)
}

func (p *PuppetMock) MessagePayload(_ context.Context, messageID string) (*puppet.MessagePayload, error) {
	if err := p.requireStarted(); err != nil {
		return nil, err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return nil, err
	}
	return env.GetMessagePayload(messageID)
}

func (p *PuppetMock) MessageSendText(_ context.Context, conversationID, text string) (string, error) {
	return p.sendAsSelf(conversationID, puppet.TextContent{Text: text})
}

func (p *PuppetMock) MessageSendFile(_ context.Context, conversationID, name string) (string, error) {
	return p.sendAsSelf(conversationID, puppet.FileContent{Name: name})
}

func (p *PuppetMock) MessageSendContact(_ context.Context, conversationID, contactID string) (string, error) {
	return p.sendAsSelf(conversationID, puppet.ContactContent{ContactID: contactID})
}

// sendAsSelf sends a message from the login user to the conversation,
// routing the destination by the id's entity kind.
func (p *PuppetMock) sendAsSelf(conversationID string, content puppet.MessageContent) (string, error) {
	if err := p.requireStarted(); err != nil {
		return "", err
	}
	user := p.mocker.LoginUser()
	if user == nil {
		return "", ErrNoLoginUser
	}
	talker := p.mocker.ContactHandle(user.ID)

	var conversation Conversation
	if KindOfID(conversationID) == KindRoom {
		conversation = p.mocker.RoomHandle(conversationID)
	} else {
		conversation = p.mocker.ContactHandle(conversationID)
	}
	return p.mocker.SendMessage(talker, conversation, content)
}

func (p *PuppetMock) RoomList(_ context.Context) ([]string, error) {
	if err := p.requireStarted(); err != nil {
		return nil, err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return nil, err
	}
	payloads := env.RoomPayloads()
	ids := make([]string, 0, len(payloads))
	for _, payload := range payloads {
		ids = append(ids, payload.ID)
	}
	return ids, nil
}

func (p *PuppetMock) RoomPayload(_ context.Context, roomID string) (*puppet.RoomPayload, error) {
	if err := p.requireStarted(); err != nil {
		return nil, err
	}
	env, err := p.mocker.Environment()
	if err != nil {
		return nil, err
	}
	return env.GetRoomPayload(roomID)
}

func (p *PuppetMock) RoomCreate(_ context.Context, memberIDs []string, topic string) (string, error) {
	if err := p.requireStarted(); err != nil {
		return "", err
	}
	room, err := p.mocker.NewRoom(RoomOptions{MemberIDs: memberIDs, Topic: topic})
	if err != nil {
		return "", err
	}
	return room.ID(), nil
}

func (p *PuppetMock) RoomAdd(_ context.Context, roomID, contactID string) error {
	if err := p.requireStarted(); err != nil {
		return err
	}
	return p.mocker.AddContactToRoom([]string{contactID}, roomID, "")
}

func (p *PuppetMock) RoomMembers(ctx context.Context, roomID string) ([]string, error) {
	payload, err := p.RoomPayload(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return payload.MemberIDs, nil
}

func (p *PuppetMock) RoomTopic(ctx context.Context, roomID string) (string, error) {
	payload, err := p.RoomPayload(ctx, roomID)
	if err != nil {
		return "", err
	}
	return payload.Topic, nil
}

func (p *PuppetMock) TagContactAdd(_ context.Context, _, _ string) error {
	return fmt.Errorf("tag_contact_add: %w", puppet.ErrNotImplemented)
}

func (p *PuppetMock) TagContactRemove(_ context.Context, _, _ string) error {
	return fmt.Errorf("tag_contact_remove: %w", puppet.ErrNotImplemented)
}

func (p *PuppetMock) TagContactDelete(_ context.Context, _ string) error {
	return fmt.Errorf("tag_contact_delete: %w", puppet.ErrNotImplemented)
}

func (p *PuppetMock) TagContactList(_ context.Context, _ string) ([]string, error) {
	return nil, fmt.Errorf("tag_contact_list: %w", puppet.ErrNotImplemented)
}
