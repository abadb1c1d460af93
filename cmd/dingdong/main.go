// Copyright 2024-2026 Aiku AI

// Command dingdong demonstrates the mock puppet end to end: it seeds a
// fake environment, starts a puppet on top of a mocker, answers "dong"
// whenever a room member says "ding", and simulates a QR scan plus the
// ding message that triggers the reply.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"go.mau.fi/util/random"

	"github.com/aiku/puppet-mock/pkg/mock"
	"github.com/aiku/puppet-mock/pkg/puppet"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := mock.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = mock.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load config")
		}
	}

	ctx := context.Background()

	env := mock.NewEnvironment(cfg, log)
	mocker := mock.NewMocker(log)
	mocker.Use(env)

	pm, err := mock.NewPuppetMock(mock.Options{Mocker: mocker, Name: "dingdong", Log: log})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create puppet")
	}

	pm.OnScan(func(evt puppet.ScanEvent) {
		log.Info().Str("qrcode", evt.QRCode).Int("status", int(evt.Status)).Msg("Scan this QR code to log in")
	})
	pm.OnLogin(func(evt puppet.LoginEvent) {
		log.Info().Str("contact_id", evt.ContactID).Msg("Logged in")
	})
	pm.OnMessage(func(evt puppet.MessageEvent) {
		msg, err := pm.MessagePayload(ctx, evt.MessageID)
		if err != nil {
			log.Error().Err(err).Str("message_id", evt.MessageID).Msg("Failed to fetch message")
			return
		}
		log.Info().
			Str("message_id", msg.ID).
			Str("from_id", msg.FromID).
			Str("text", msg.Text()).
			Msg("Received message")
		if msg.Text() == "ding" && msg.RoomID != "" {
			if _, err := pm.MessageSendText(ctx, msg.RoomID, "dong"); err != nil {
				log.Error().Err(err).Msg("Failed to reply")
			}
		}
	})

	if err := pm.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start puppet")
	}

	if err := mocker.Scan(random.String(12)); err != nil {
		log.Fatal().Err(err).Msg("Failed to simulate scan")
	}
	if err := pm.Login(ctx, env.LoginUserPayload().ID); err != nil {
		log.Fatal().Err(err).Msg("Failed to log in")
	}

	// Put the first three contacts in a room and let one of them say ding.
	contacts := env.ContactPayloads()
	if len(contacts) < 3 {
		log.Fatal().Int("contacts", len(contacts)).Msg("Need at least three contacts, raise contact_count")
	}
	memberIDs := []string{contacts[0].ID, contacts[1].ID, contacts[2].ID}
	room, err := mocker.NewRoom(mock.RoomOptions{MemberIDs: memberIDs, Topic: "ding dong"})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create room")
	}

	talker := mocker.ContactHandle(memberIDs[0])
	if _, err := mocker.SendText(talker, room, "ding"); err != nil {
		log.Fatal().Err(err).Msg("Failed to send ding")
	}

	if err := pm.Stop(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to stop puppet")
	}
}
