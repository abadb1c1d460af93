// Copyright 2024-2026 Aiku AI

package puppet

import (
	"testing"
)

func TestEventKindNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventKindScan, "scan"},
		{EventKindLogin, "login"},
		{EventKindLogout, "logout"},
		{EventKindMessage, "message"},
		{EventKindRoomJoin, "room-join"},
		{EventKindUnknown, "unknown"},
		{EventKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEnvelopeScanRoundTrip(t *testing.T) {
	t.Parallel()
	envelope, err := NewEnvelope(EventKindScan, ScanEvent{QRCode: "code123", Status: ScanStatusWaiting})
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}
	if envelope.Kind != EventKindScan {
		t.Errorf("Kind: got %v, want %v", envelope.Kind, EventKindScan)
	}

	var evt ScanEvent
	if err := envelope.Decode(&evt); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if evt.QRCode != "code123" {
		t.Errorf("QRCode: got %q, want %q", evt.QRCode, "code123")
	}
	if evt.Status != ScanStatusWaiting {
		t.Errorf("Status: got %v, want %v", evt.Status, ScanStatusWaiting)
	}
}

func TestEnvelopeRoomJoinRoundTrip(t *testing.T) {
	t.Parallel()
	in := RoomJoinEvent{
		RoomID:     "room-1",
		InviterID:  "contact-1",
		InviteeIDs: []string{"contact-2", "contact-3"},
		Timestamp:  1700000000000,
	}
	envelope, err := NewEnvelope(EventKindRoomJoin, in)
	if err != nil {
		t.Fatalf("NewEnvelope: %v", err)
	}

	var out RoomJoinEvent
	if err := envelope.Decode(&out); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.RoomID != in.RoomID || out.InviterID != in.InviterID || out.Timestamp != in.Timestamp {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}
	if len(out.InviteeIDs) != 2 || out.InviteeIDs[0] != "contact-2" || out.InviteeIDs[1] != "contact-3" {
		t.Errorf("InviteeIDs: got %v", out.InviteeIDs)
	}
}

func TestEnvelopeDecodeInvalidPayload(t *testing.T) {
	t.Parallel()
	envelope := Envelope{Kind: EventKindMessage, Payload: "{not json"}
	var evt MessageEvent
	if err := envelope.Decode(&evt); err == nil {
		t.Error("Decode should fail for invalid JSON")
	}
}
