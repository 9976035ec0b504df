package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// ============================================================================
// User Tests
// ============================================================================

func TestUser_FillFromJSON(t *testing.T) {
	payload := `{"id": "30", "username": "alice", "discriminator": "0001", "avatar": "hash", "bot": true}`

	var u User
	require.NoError(t, u.FillFromJSON([]byte(payload)))
	assert.Equal(t, snowflake.ID(30), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "0001", u.Discriminator)
	assert.True(t, u.Bot)
	assert.Equal(t, snowflake.ID(30), u.EntityID())
}

func TestUser_FillFromJSON_Defaults(t *testing.T) {
	var u User
	require.NoError(t, u.FillFromJSON([]byte(`{"id": "30"}`)))
	assert.Empty(t, u.Username)
	assert.Empty(t, u.Avatar)
	assert.False(t, u.Bot)
}

func TestUser_FillFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"Missing ID", `{"username": "alice"}`, ErrMissingField},
		{"Null ID", `{"id": null}`, ErrMissingField},
		{"Wrong type", `{"id": "30", "bot": "yes"}`, ErrMalformedField},
		{"Not JSON", `{{`, ErrMalformedField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u User
			assert.ErrorIs(t, u.FillFromJSON([]byte(tt.payload)), tt.wantErr)
		})
	}
}

// ============================================================================
// Role Tests
// ============================================================================

func TestRole_FillFromJSON(t *testing.T) {
	payload := `{
		"id": "10",
		"name": "mods",
		"color": 3447003,
		"hoist": true,
		"position": 2,
		"permissions": "104324673",
		"managed": false,
		"mentionable": true
	}`

	var r Role
	require.NoError(t, r.FillFromJSON([]byte(payload)))
	assert.Equal(t, snowflake.ID(10), r.ID)
	assert.Equal(t, "mods", r.Name)
	assert.Equal(t, uint32(3447003), r.Color)
	assert.True(t, r.Hoist)
	assert.Equal(t, uint64(104324673), r.Permissions)
	assert.True(t, r.Mentionable)
}

func TestRole_FillFromJSON_MissingID(t *testing.T) {
	var r Role
	assert.ErrorIs(t, r.FillFromJSON([]byte(`{"name": "mods"}`)), ErrMissingField)
}

// ============================================================================
// Channel Tests
// ============================================================================

func TestChannelType_Constants(t *testing.T) {
	tests := []struct {
		name        string
		channelType ChannelType
		expected    int
	}{
		{"Guild text", ChannelTypeGuildText, 0},
		{"DM", ChannelTypeDM, 1},
		{"Guild voice", ChannelTypeGuildVoice, 2},
		{"Group DM", ChannelTypeGroupDM, 3},
		{"Guild category", ChannelTypeGuildCategory, 4},
		{"Guild news", ChannelTypeGuildNews, 5},
		{"Guild store", ChannelTypeGuildStore, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, int(tt.channelType))
		})
	}
}

func TestChannel_FillFromJSON(t *testing.T) {
	payload := `{
		"id": "20",
		"guild_id": "1",
		"name": "general",
		"type": 0,
		"position": 3,
		"parent_id": "19",
		"topic": "chatter",
		"nsfw": false,
		"last_message_id": "500",
		"rate_limit_per_user": 5
	}`

	var c Channel
	require.NoError(t, c.FillFromJSON([]byte(payload)))
	assert.Equal(t, snowflake.ID(20), c.ID)
	assert.Equal(t, ChannelTypeGuildText, c.Type)
	assert.Equal(t, snowflake.ID(19), c.ParentID)
	assert.Equal(t, snowflake.ID(500), c.LastMessageID)
	assert.Equal(t, 5, c.RateLimitPerUser)
}

func TestChannel_FillFromJSON_MissingID(t *testing.T) {
	var c Channel
	assert.ErrorIs(t, c.FillFromJSON([]byte(`{"name": "general"}`)), ErrMissingField)
}

// ============================================================================
// Attachment / Reaction Tests
// ============================================================================

func TestAttachment_FillFromJSON(t *testing.T) {
	payload := `{
		"id": "600",
		"filename": "cat.png",
		"size": 2048,
		"url": "https://cdn.example/cat.png",
		"proxy_url": "https://proxy.example/cat.png",
		"width": 64,
		"height": 48,
		"content_type": "image/png"
	}`

	var a Attachment
	require.NoError(t, a.FillFromJSON([]byte(payload)))
	assert.Equal(t, snowflake.ID(600), a.ID)
	assert.Equal(t, uint32(2048), a.Size)
	assert.Equal(t, uint32(64), a.Width)
	assert.Equal(t, "image/png", a.ContentType)
}

func TestReaction_FillFromJSON(t *testing.T) {
	t.Run("Custom emoji", func(t *testing.T) {
		var r Reaction
		require.NoError(t, r.FillFromJSON([]byte(`{"count": 2, "me": false, "emoji": {"id": "700", "name": "blob"}}`)))
		assert.Equal(t, uint32(2), r.Count)
		assert.Equal(t, snowflake.ID(700), r.EmojiID)
		assert.Equal(t, "blob", r.EmojiName)
	})

	t.Run("Unicode emoji has null id", func(t *testing.T) {
		var r Reaction
		require.NoError(t, r.FillFromJSON([]byte(`{"count": 1, "me": true, "emoji": {"id": null, "name": "👍"}}`)))
		assert.True(t, r.EmojiID.IsZero())
		assert.Equal(t, "👍", r.EmojiName)
		assert.True(t, r.Me)
	})
}

// ============================================================================
// AuthorRef / CachePolicy Tests
// ============================================================================

func TestAuthorRef(t *testing.T) {
	u := &User{ID: 30}

	cached := CachedAuthor(u)
	assert.False(t, cached.Synthetic())
	assert.Equal(t, snowflake.ID(30), cached.ID())
	got, ok := cached.User().Get()
	require.True(t, ok)
	assert.Same(t, u, got)

	synthetic := SyntheticAuthor(u)
	assert.True(t, synthetic.Synthetic())

	var absent AuthorRef
	assert.True(t, absent.User().IsAbsent())
	assert.True(t, absent.ID().IsZero())
}

func TestParseCachePolicy(t *testing.T) {
	tests := []struct {
		input string
		want  CachePolicy
		ok    bool
	}{
		{"aggressive", CachePolicyAggressive, true},
		{"lazy", CachePolicyLazy, true},
		{"none", CachePolicyNone, true},
		{"eager", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCachePolicy(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
