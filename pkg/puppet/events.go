// Copyright 2024-2026 Aiku AI

package puppet

import (
	"encoding/json"
	"fmt"
)

// EventKind tags an event envelope. The numeric values are part of the
// envelope wire format and must not be reordered.
type EventKind int

const (
	EventKindUnknown EventKind = iota
	EventKindScan
	EventKindLogin
	EventKindLogout
	EventKindMessage
	EventKindRoomJoin
)

// String returns the framework-facing event name.
func (k EventKind) String() string {
	switch k {
	case EventKindScan:
		return "scan"
	case EventKindLogin:
		return "login"
	case EventKindLogout:
		return "logout"
	case EventKindMessage:
		return "message"
	case EventKindRoomJoin:
		return "room-join"
	default:
		return "unknown"
	}
}

// ScanStatus is the state of a QR code login attempt.
type ScanStatus int

const (
	ScanStatusUnknown ScanStatus = iota
	ScanStatusCancel
	ScanStatusWaiting
	ScanStatusScanned
	ScanStatusConfirmed
	ScanStatusTimeout
)

// ScanEvent is emitted when a QR code is presented for login.
type ScanEvent struct {
	QRCode string     `json:"qrcode"`
	Status ScanStatus `json:"status"`
}

// LoginEvent is emitted when a contact becomes the session's login user.
type LoginEvent struct {
	ContactID string `json:"contactId"`
}

// LogoutEvent is emitted when the login user logs out.
type LogoutEvent struct {
	ContactID string `json:"contactId"`
}

// MessageEvent announces a new message by id only; the full payload is
// fetched separately through the payload-lookup operation.
type MessageEvent struct {
	MessageID string `json:"messageId"`
}

// RoomJoinEvent is emitted when contacts are invited into a room.
type RoomJoinEvent struct {
	RoomID     string   `json:"roomId"`
	InviterID  string   `json:"inviterId"`
	InviteeIDs []string `json:"inviteeIdList"`
	Timestamp  int64    `json:"timestamp"`
}

// Envelope is the wire format between an event source and its listeners:
// an event kind plus the JSON-serialized event payload. Envelopes are
// transient; they are consumed synchronously and never stored.
type Envelope struct {
	Kind    EventKind `json:"type"`
	Payload string    `json:"payload"`
}

// NewEnvelope serializes an event payload into an envelope.
func NewEnvelope(kind EventKind, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode %s event: %w", kind, err)
	}
	return Envelope{Kind: kind, Payload: string(data)}, nil
}

// Decode unmarshals the envelope payload into the given event struct.
func (e Envelope) Decode(v any) error {
	if err := json.Unmarshal([]byte(e.Payload), v); err != nil {
		return fmt.Errorf("failed to decode %s event: %w", e.Kind, err)
	}
	return nil
}
