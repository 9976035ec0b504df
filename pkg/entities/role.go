package entities

import (
	"encoding/json"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// Role represents a guild role. Roles are cached independently; guilds
// reference them by ID only.
type Role struct {
	ID          snowflake.ID `json:"id"`
	GuildID     snowflake.ID `json:"guild_id"`
	Name        string       `json:"name"`
	Color       uint32       `json:"color"`
	Hoist       bool         `json:"hoist"`
	Position    int          `json:"position"`
	Permissions uint64       `json:"permissions,string"`
	Managed     bool         `json:"managed"`
	Mentionable bool         `json:"mentionable"`
}

// EntityID implements cache.Keyed.
func (r *Role) EntityID() snowflake.ID {
	return r.ID
}

// FillFromJSON populates the role from its wire document.
func (r *Role) FillFromJSON(data json.RawMessage) error {
	if err := json.Unmarshal(data, r); err != nil {
		return malformed("role", err)
	}
	if r.ID.IsZero() {
		return missingField("role", "id")
	}
	return nil
}
