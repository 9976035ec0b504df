// Package testutil provides shared wire-payload fixtures for tests.
package testutil

import (
	"encoding/json"
	"fmt"
)

// UserPayload builds a minimal user document with the given ID.
func UserPayload(id string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id":%q,"username":"user_%s","discriminator":"0001","avatar":"avatar_%s"}`,
		id, id, id,
	))
}

// RolePayload builds a minimal role document with the given ID.
func RolePayload(id string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id":%q,"name":"role_%s","color":3447003,"position":1,"permissions":"104324673"}`,
		id, id,
	))
}

// ChannelPayload builds a minimal text-channel document with the given
// ID.
func ChannelPayload(id string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id":%q,"name":"channel_%s","type":0,"position":0}`,
		id, id,
	))
}

// MemberPayload builds a member fragment wrapping a user document.
func MemberPayload(userID string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"user":%s,"nick":"nick_%s","roles":[],"joined_at":"2021-05-01T10:00:00.000000+00:00","deaf":false,"mute":false}`,
		UserPayload(userID), userID,
	))
}

// GuildCreatePayload builds an available guild snapshot embedding the
// given role, channel and member fragments.
func GuildCreatePayload(id string, roles, channels, members []json.RawMessage) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id":%q,"name":"guild_%s","owner_id":"1","unavailable":false,"roles":%s,"channels":%s,"members":%s}`,
		id, id, joinFragments(roles), joinFragments(channels), joinFragments(members),
	))
}

// UnavailableGuildPayload builds the placeholder form of a guild
// snapshot. Embedded collections are absent on purpose.
func UnavailableGuildPayload(id string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{"id":%q,"unavailable":true}`, id))
}

// MessageCreatePayload builds a message document authored by the given
// user document.
func MessageCreatePayload(id, channelID string, author json.RawMessage) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(
		`{"id":%q,"channel_id":%q,"author":%s,"content":"hello world","timestamp":"2021-05-01T12:30:00.000000+00:00","type":0}`,
		id, channelID, author,
	))
}

func joinFragments(fragments []json.RawMessage) string {
	out := []byte{'['}
	for i, f := range fragments {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, f...)
	}
	return string(append(out, ']'))
}
