package events

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/parsascontentcorner/discordstate/pkg/entities"
	"github.com/parsascontentcorner/discordstate/pkg/state"
)

// guildCreateWire carves the embedded collections out of a guild-create
// payload. The guild's scalar fields are filled by the entity itself.
type guildCreateWire struct {
	Roles    []json.RawMessage `json:"roles"`
	Channels []json.RawMessage `json:"channels"`
	Members  []json.RawMessage `json:"members"`
}

// memberFragment exposes the nested user sub-document of one member
// fragment.
type memberFragment struct {
	User json.RawMessage `json:"user"`
}

// HandleGuildCreate materializes one guild snapshot: the guild entity
// itself, plus its roles, channels and members fanned out into their own
// caches and referenced back by ID. An unavailable guild is cached as a
// placeholder without reading the embedded collections, which the
// payload may omit entirely. A malformed fragment is skipped with a
// warning; its siblings still land.
func HandleGuildCreate(st *state.State, data json.RawMessage) (*entities.Guild, error) {
	logger := st.Logger()

	guild := &entities.Guild{}
	if err := guild.FillFromJSON(data); err != nil {
		return nil, err
	}

	if !guild.Unavailable {
		var wire guildCreateWire
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, err
		}

		for i, fragment := range wire.Roles {
			role := &entities.Role{}
			if err := role.FillFromJSON(fragment); err != nil {
				logger.Warn("skipping malformed role fragment",
					zap.Stringer("guild_id", guild.ID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			role.GuildID = guild.ID
			st.Roles.Store(role)
			guild.Roles = append(guild.Roles, role.ID)
		}

		for i, fragment := range wire.Channels {
			channel := &entities.Channel{}
			if err := channel.FillFromJSON(fragment); err != nil {
				logger.Warn("skipping malformed channel fragment",
					zap.Stringer("guild_id", guild.ID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			channel.GuildID = guild.ID
			st.Channels.Store(channel)
			guild.Channels = append(guild.Channels, channel.ID)
		}

		for i, fragment := range wire.Members {
			var member memberFragment
			if err := json.Unmarshal(fragment, &member); err != nil {
				logger.Warn("skipping malformed member fragment",
					zap.Stringer("guild_id", guild.ID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			user := &entities.User{}
			if err := user.FillFromJSON(member.User); err != nil {
				logger.Warn("skipping member without usable user",
					zap.Stringer("guild_id", guild.ID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			guildMember := &entities.GuildMember{}
			if err := guildMember.FillFromJSON(fragment, guild, user); err != nil {
				logger.Warn("skipping malformed member fragment",
					zap.Stringer("guild_id", guild.ID),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			guild.Members[user.ID] = guildMember
			st.Users.Store(user)
		}
	}

	// The guild lands in its cache even when unavailable; a placeholder
	// is still addressable by ID.
	st.Guilds.Store(guild)

	logger.Debug("guild snapshot cached",
		zap.Stringer("guild_id", guild.ID),
		zap.Bool("unavailable", guild.Unavailable),
		zap.Int("roles", len(guild.Roles)),
		zap.Int("channels", len(guild.Channels)),
		zap.Int("members", len(guild.Members)),
	)
	return guild, nil
}
