// Package state wires the per-kind entity caches into one container
// owned by the client session. The container is plain dependency-injected
// state: construct one per session and pass it to the event handlers,
// there are no package-level singletons.
package state

import (
	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/parsascontentcorner/discordstate/pkg/cache"
	"github.com/parsascontentcorner/discordstate/pkg/entities"
	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// State holds one cache per entity kind. Cross-cache atomicity is not
// guaranteed: a guild may reference a role ID before the role cache has
// the role, and readers must treat that miss as "not yet available".
type State struct {
	Guilds   *cache.Cache[*entities.Guild]
	Roles    *cache.Cache[*entities.Role]
	Channels *cache.Cache[*entities.Channel]
	Users    *cache.Cache[*entities.User]
	Messages *cache.Cache[*entities.Message]

	logger *zap.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger attaches a logger used by the state and its handlers. The
// default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// New creates an empty state container.
func New(opts ...Option) *State {
	s := &State{
		Guilds:   cache.New[*entities.Guild](),
		Roles:    cache.New[*entities.Role](),
		Channels: cache.New[*entities.Channel](),
		Users:    cache.New[*entities.User](),
		Messages: cache.New[*entities.Message](),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Logger returns the logger configured for this state.
func (s *State) Logger() *zap.Logger {
	return s.logger
}

// FetchUser implements entities.UserDirectory.
func (s *State) FetchUser(id snowflake.ID) mo.Option[*entities.User] {
	return s.Users.Fetch(id)
}

// StoreUser implements entities.UserDirectory.
func (s *State) StoreUser(u *entities.User) {
	s.Users.Store(u)
}

var _ entities.UserDirectory = (*State)(nil)
