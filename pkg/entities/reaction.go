package entities

import (
	"encoding/json"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// Reaction tallies one emoji's reactions on a message.
type Reaction struct {
	Count     uint32       `json:"count"`
	Me        bool         `json:"me"`
	EmojiID   snowflake.ID `json:"-"`
	EmojiName string       `json:"-"`
}

type reactionWire struct {
	Count uint32 `json:"count"`
	Me    bool   `json:"me"`
	Emoji struct {
		ID   snowflake.ID `json:"id"`
		Name string       `json:"name"`
	} `json:"emoji"`
}

// FillFromJSON populates the reaction from its wire fragment. The emoji
// sub-object carries a null ID for built-in unicode emoji.
func (r *Reaction) FillFromJSON(data json.RawMessage) error {
	var wire reactionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return malformed("reaction", err)
	}
	r.Count = wire.Count
	r.Me = wire.Me
	r.EmojiID = wire.Emoji.ID
	r.EmojiName = wire.Emoji.Name
	return nil
}

// UnmarshalJSON lets reactions decode in place when nested under a
// message.
func (r *Reaction) UnmarshalJSON(data []byte) error {
	return r.FillFromJSON(data)
}
