// Copyright 2024-2026 Aiku AI

package puppet

import (
	"testing"
)

func TestMessageContentTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		content MessageContent
		want    MessageType
	}{
		{TextContent{Text: "ding"}, MessageTypeText},
		{FileContent{Name: "report.pdf"}, MessageTypeFile},
		{ContactContent{ContactID: "contact-1"}, MessageTypeContact},
	}
	for _, tt := range tests {
		if got := tt.content.MessageType(); got != tt.want {
			t.Errorf("%T.MessageType(): got %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestMessagePayloadText(t *testing.T) {
	t.Parallel()
	msg := &MessagePayload{Type: MessageTypeText, Content: TextContent{Text: "ding"}}
	if got := msg.Text(); got != "ding" {
		t.Errorf("Text: got %q, want %q", got, "ding")
	}

	fileMsg := &MessagePayload{Type: MessageTypeFile, Content: FileContent{Name: "a.png"}}
	if got := fileMsg.Text(); got != "" {
		t.Errorf("Text on file message: got %q, want empty", got)
	}
}

func TestRoomPayloadCloneIsDeep(t *testing.T) {
	t.Parallel()
	room := &RoomPayload{
		ID:        "room-1",
		Topic:     "original",
		MemberIDs: []string{"contact-1"},
		AdminIDs:  []string{"contact-2"},
	}
	cp := room.Clone()
	cp.MemberIDs = append(cp.MemberIDs, "contact-3")
	cp.AdminIDs[0] = "contact-9"

	if len(room.MemberIDs) != 1 {
		t.Errorf("clone mutation leaked into MemberIDs: %v", room.MemberIDs)
	}
	if room.AdminIDs[0] != "contact-2" {
		t.Errorf("clone mutation leaked into AdminIDs: %v", room.AdminIDs)
	}
}

func TestContactPayloadCloneNil(t *testing.T) {
	t.Parallel()
	var payload *ContactPayload
	if payload.Clone() != nil {
		t.Error("Clone of nil payload should be nil")
	}
}
