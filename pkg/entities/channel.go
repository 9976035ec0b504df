package entities

import (
	"encoding/json"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// ChannelType represents Discord channel types.
type ChannelType int

// Discord channel type constants. Values 7-9 are unassigned by the
// platform and must stay reserved.
const (
	ChannelTypeGuildText     ChannelType = 0
	ChannelTypeDM            ChannelType = 1
	ChannelTypeGuildVoice    ChannelType = 2
	ChannelTypeGroupDM       ChannelType = 3
	ChannelTypeGuildCategory ChannelType = 4
	ChannelTypeGuildNews     ChannelType = 5
	ChannelTypeGuildStore    ChannelType = 6
)

// Channel represents a guild channel. Channels are cached independently;
// guilds reference them by ID only.
type Channel struct {
	ID               snowflake.ID `json:"id"`
	GuildID          snowflake.ID `json:"guild_id"`
	Name             string       `json:"name"`
	Type             ChannelType  `json:"type"`
	Position         int          `json:"position"`
	ParentID         snowflake.ID `json:"parent_id"`
	Topic            string       `json:"topic"`
	NSFW             bool         `json:"nsfw"`
	LastMessageID    snowflake.ID `json:"last_message_id"`
	RateLimitPerUser int          `json:"rate_limit_per_user"`
}

// EntityID implements cache.Keyed.
func (c *Channel) EntityID() snowflake.ID {
	return c.ID
}

// FillFromJSON populates the channel from its wire document.
func (c *Channel) FillFromJSON(data json.RawMessage) error {
	if err := json.Unmarshal(data, c); err != nil {
		return malformed("channel", err)
	}
	if c.ID.IsZero() {
		return missingField("channel", "id")
	}
	return nil
}
