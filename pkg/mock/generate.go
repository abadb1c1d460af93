// Copyright 2024-2026 Aiku AI

package mock

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/aiku/puppet-mock/pkg/puppet"
)

// defaultAvatar is a 1x1 PNG data URI used as the avatar of every
// generated contact and room.
const defaultAvatar = "data:image/png;base64," +
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

// Generator produces random domain payloads. It is the environment's
// single randomness configuration point: the same seed yields the same
// sequence of demographic fields, so tests can pin the generated data.
// A zero seed picks a random one per run.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a generator seeded with the given value.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Contact generates one random contact payload with a fresh id. Ids come
// from the uuid source and are unique regardless of the seed.
func (g *Generator) Contact() *puppet.ContactPayload {
	return &puppet.ContactPayload{
		ID:        NewContactID(),
		Name:      g.faker.Name(),
		Gender:    puppet.ContactGender(g.faker.Number(0, 2)),
		Type:      puppet.ContactType(g.faker.Number(0, 2)),
		Avatar:    defaultAvatar,
		Address:   g.faker.Address().Address,
		City:      g.faker.City(),
		Province:  g.faker.State(),
		Alias:     g.faker.Name(),
		Friend:    true,
		Star:      g.faker.Bool(),
		Signature: g.faker.Sentence(6),
		Weixin:    "weixin-" + g.faker.LetterN(12),
	}
}

// Room generates a random room payload with a fresh id, the given owner
// and the given members.
func (g *Generator) Room(ownerID string, memberIDs []string) *puppet.RoomPayload {
	return &puppet.RoomPayload{
		ID:        NewRoomID(),
		Topic:     g.faker.Sentence(4),
		Avatar:    defaultAvatar,
		OwnerID:   ownerID,
		AdminIDs:  []string{},
		MemberIDs: memberIDs,
	}
}

// SampleIDs draws a random-size (0..len) random sample of the given ids.
// The input slice is not modified.
func (g *Generator) SampleIDs(ids []string) []string {
	cp := append([]string(nil), ids...)
	g.faker.ShuffleStrings(cp)
	n := g.faker.Number(0, len(cp))
	return cp[:n]
}
