package entities

import (
	"encoding/json"
	"time"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// Guild represents a Discord guild (server). A guild never embeds its
// roles, channels or users; it carries ordered ID sequences that resolve
// through the per-kind caches. Member records are the one exception:
// they are guild-scoped and owned exclusively by the guild's member map.
type Guild struct {
	ID          snowflake.ID `json:"id"`
	Name        string       `json:"name"`
	Icon        string       `json:"icon"`
	OwnerID     snowflake.ID `json:"owner_id"`
	MemberCount int          `json:"member_count"`
	Unavailable bool         `json:"unavailable"`

	// ID references into the role and channel caches, in payload order.
	Roles    []snowflake.ID `json:"-"`
	Channels []snowflake.ID `json:"-"`

	// Members is keyed by user ID. The guild owns these records; the
	// users they describe live in the shared user cache.
	Members map[snowflake.ID]*GuildMember `json:"-"`
}

// EntityID implements cache.Keyed.
func (g *Guild) EntityID() snowflake.ID {
	return g.ID
}

// FillFromJSON populates the guild's scalar fields from its wire
// document. Embedded role/channel/member fragments are deliberately not
// read here; the snapshot handler materializes those into their own
// caches. An unavailable guild is a placeholder and may omit them
// entirely.
func (g *Guild) FillFromJSON(data json.RawMessage) error {
	if err := json.Unmarshal(data, g); err != nil {
		return malformed("guild", err)
	}
	if g.ID.IsZero() {
		return missingField("guild", "id")
	}
	if g.Members == nil {
		g.Members = make(map[snowflake.ID]*GuildMember)
	}
	return nil
}

// GuildMember binds a shared User to guild-specific attributes. Member
// records are owned by their guild's member map and are never cached
// independently.
type GuildMember struct {
	UserID   snowflake.ID
	GuildID  snowflake.ID
	Nickname string
	Roles    []snowflake.ID
	JoinedAt time.Time
	Deaf     bool
	Mute     bool
}

type guildMemberWire struct {
	Nick     string         `json:"nick"`
	Roles    []snowflake.ID `json:"roles"`
	JoinedAt string         `json:"joined_at"`
	Deaf     bool           `json:"deaf"`
	Mute     bool           `json:"mute"`
}

// FillFromJSON populates the member from its wire fragment, binding it
// to the owning guild and the already-materialized user.
func (gm *GuildMember) FillFromJSON(data json.RawMessage, g *Guild, u *User) error {
	if u == nil || u.ID.IsZero() {
		return missingField("guild member", "user")
	}
	var wire guildMemberWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return malformed("guild member", err)
	}
	gm.UserID = u.ID
	if g != nil {
		gm.GuildID = g.ID
	}
	gm.Nickname = wire.Nick
	gm.Roles = wire.Roles
	gm.JoinedAt = parseTimestamp(wire.JoinedAt)
	gm.Deaf = wire.Deaf
	gm.Mute = wire.Mute
	return nil
}
