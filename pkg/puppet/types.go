// Copyright 2024-2026 Aiku AI

package puppet

// ContactGender is the advertised gender of a contact.
type ContactGender int

const (
	ContactGenderUnknown ContactGender = iota
	ContactGenderMale
	ContactGenderFemale
)

// ContactType distinguishes personal accounts from official ones.
type ContactType int

const (
	ContactTypeUnspecified ContactType = iota
	ContactTypeIndividual
	ContactTypeOfficial
)

// ContactPayload is the persisted record for a single contact.
type ContactPayload struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Gender    ContactGender `json:"gender"`
	Type      ContactType   `json:"type"`
	Avatar    string        `json:"avatar"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Province  string        `json:"province"`
	Alias     string        `json:"alias"`
	Friend    bool          `json:"friend"`
	Star      bool          `json:"star"`
	Signature string        `json:"signature"`
	Weixin    string        `json:"weixin"`
}

// Clone returns a copy of the payload.
func (c *ContactPayload) Clone() *ContactPayload {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// RoomPayload is the persisted record for a single room.
type RoomPayload struct {
	ID        string   `json:"id"`
	Topic     string   `json:"topic"`
	Avatar    string   `json:"avatar"`
	OwnerID   string   `json:"ownerId"`
	AdminIDs  []string `json:"adminIdList"`
	MemberIDs []string `json:"memberIdList"`
}

// Clone returns a deep copy of the payload; the id slices are not shared.
func (r *RoomPayload) Clone() *RoomPayload {
	if r == nil {
		return nil
	}
	cp := *r
	cp.AdminIDs = append([]string(nil), r.AdminIDs...)
	cp.MemberIDs = append([]string(nil), r.MemberIDs...)
	return &cp
}
