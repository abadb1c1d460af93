// Copyright 2024-2026 Aiku AI

package mock

import (
	"strings"
	"testing"
)

func TestNewIDPrefixes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		newID  func() string
		prefix string
	}{
		{"contact", NewContactID, "contact-"},
		{"room", NewRoomID, "room-"},
		{"message", NewMessageID, "message-"},
	}
	for _, tt := range tests {
		id := tt.newID()
		if !strings.HasPrefix(id, tt.prefix) {
			t.Errorf("%s id %q missing prefix %q", tt.name, id, tt.prefix)
		}
		if len(id) <= len(tt.prefix) {
			t.Errorf("%s id %q has no uuid part", tt.name, id)
		}
	}
}

func TestNewIDsUnique(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for range 100 {
		id := NewContactID()
		if seen[id] {
			t.Fatalf("duplicate contact id %q", id)
		}
		seen[id] = true
	}
}

func TestKindOfID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		id   string
		want EntityKind
	}{
		{"contact-abc", KindContact},
		{"room-abc", KindRoom},
		{"message-abc", KindMessage},
		{"abc", KindUnknown},
		{"", KindUnknown},
		{"roomabc", KindUnknown},
	}
	for _, tt := range tests {
		if got := KindOfID(tt.id); got != tt.want {
			t.Errorf("KindOfID(%q): got %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestEntityKindString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kind EntityKind
		want string
	}{
		{KindContact, "contact"},
		{KindRoom, "room"},
		{KindMessage, "message"},
		{KindUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EntityKind.String(): got %q, want %q", got, tt.want)
		}
	}
}
