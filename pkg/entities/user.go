package entities

import (
	"encoding/json"

	"github.com/samber/mo"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// User represents a Discord user. Users are cached independently and
// shared by every guild member record and message that references them.
type User struct {
	ID            snowflake.ID `json:"id"`
	Username      string       `json:"username"`
	Discriminator string       `json:"discriminator"`
	Avatar        string       `json:"avatar"`
	Bot           bool         `json:"bot"`
}

// EntityID implements cache.Keyed.
func (u *User) EntityID() snowflake.ID {
	return u.ID
}

// FillFromJSON populates the user from its wire document. The ID is
// required; every other field defaults to its zero value when absent.
func (u *User) FillFromJSON(data json.RawMessage) error {
	if err := json.Unmarshal(data, u); err != nil {
		return malformed("user", err)
	}
	if u.ID.IsZero() {
		return missingField("user", "id")
	}
	return nil
}

// UserDirectory resolves and stores shared users. It is the narrow view
// of the state container that message filling needs to attach authors
// without owning the caches themselves.
type UserDirectory interface {
	FetchUser(id snowflake.ID) mo.Option[*User]
	StoreUser(u *User)
}
