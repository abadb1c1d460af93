// Copyright 2024-2026 Aiku AI

package puppet

// MessageType is the kind of a message payload.
type MessageType int

const (
	MessageTypeUnknown MessageType = iota
	MessageTypeText
	MessageTypeFile
	MessageTypeContact
)

func (mt MessageType) String() string {
	switch mt {
	case MessageTypeText:
		return "text"
	case MessageTypeFile:
		return "file"
	case MessageTypeContact:
		return "contact"
	default:
		return "unknown"
	}
}

// MessageContent is the sealed content union of a message. Exactly one
// variant exists per message type, so a reader never has to guess what a
// shared string field means.
type MessageContent interface {
	MessageType() MessageType
}

// TextContent carries the literal text of a text message.
type TextContent struct {
	Text string `json:"text"`
}

func (TextContent) MessageType() MessageType { return MessageTypeText }

// FileContent carries the name of the file a file message references.
type FileContent struct {
	Name string `json:"name"`
}

func (FileContent) MessageType() MessageType { return MessageTypeFile }

// ContactContent carries the contact id of a contact-card message.
type ContactContent struct {
	ContactID string `json:"contactId"`
}

func (ContactContent) MessageType() MessageType { return MessageTypeContact }

// MessagePayload is the persisted record for a single message. Exactly one
// of ToID and RoomID is set: ToID for a direct message, RoomID for a room
// message. Timestamp is milliseconds since epoch. Payloads are immutable
// after creation.
type MessagePayload struct {
	ID        string         `json:"id"`
	FromID    string         `json:"fromId"`
	ToID      string         `json:"toId,omitempty"`
	RoomID    string         `json:"roomId,omitempty"`
	Timestamp int64          `json:"timestamp"`
	Type      MessageType    `json:"type"`
	Content   MessageContent `json:"-"`
}

// Clone returns a copy of the payload. Content variants are immutable
// values, so a shallow copy is a full copy.
func (m *MessagePayload) Clone() *MessagePayload {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

// Text returns the text of a text message, or "" for other kinds.
func (m *MessagePayload) Text() string {
	if c, ok := m.Content.(TextContent); ok {
		return c.Text
	}
	return ""
}
