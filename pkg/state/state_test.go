package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parsascontentcorner/discordstate/pkg/entities"
)

func TestNew(t *testing.T) {
	st := New()

	require.NotNil(t, st.Guilds)
	require.NotNil(t, st.Roles)
	require.NotNil(t, st.Channels)
	require.NotNil(t, st.Users)
	require.NotNil(t, st.Messages)
	require.NotNil(t, st.Logger())

	assert.Equal(t, 0, st.Guilds.Len())
}

func TestWithLogger(t *testing.T) {
	log := zap.NewExample()
	st := New(WithLogger(log))
	assert.Same(t, log, st.Logger())
}

func TestState_UserDirectory(t *testing.T) {
	st := New()

	assert.True(t, st.FetchUser(30).IsAbsent())

	user := &entities.User{ID: 30, Username: "alice"}
	st.StoreUser(user)

	got, ok := st.FetchUser(30).Get()
	require.True(t, ok)
	assert.Same(t, user, got)

	// The directory is a view over the user cache, not a copy.
	cached, ok := st.Users.Fetch(30).Get()
	require.True(t, ok)
	assert.Same(t, user, cached)
}

func TestState_IndependentInstances(t *testing.T) {
	a := New()
	b := New()

	a.StoreUser(&entities.User{ID: 30})
	assert.Equal(t, 1, a.Users.Len())
	assert.Equal(t, 0, b.Users.Len())
}
