package entities

import (
	"github.com/samber/mo"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// CachePolicy controls how message filling materializes author users.
type CachePolicy uint8

const (
	// CachePolicyAggressive resolves authors through the user
	// directory, creating and storing the user on a miss.
	CachePolicyAggressive CachePolicy = 0
	// CachePolicyLazy resolves authors already present in the user
	// directory but never inserts new ones.
	CachePolicyLazy CachePolicy = 1
	// CachePolicyNone never touches the user directory; every author
	// is synthesized standalone.
	CachePolicyNone CachePolicy = 2
)

// ParseCachePolicy maps the configuration names to a policy.
func ParseCachePolicy(s string) (CachePolicy, bool) {
	switch s {
	case "aggressive":
		return CachePolicyAggressive, true
	case "lazy":
		return CachePolicyLazy, true
	case "none":
		return CachePolicyNone, true
	}
	return 0, false
}

// AuthorRef is a message's author reference. It distinguishes, at the
// type level, a user shared through the user cache from one synthesized
// for this message alone (webhook authors, or lookups under a policy
// that skips the cache). The distinction matters for ownership: a
// synthetic author lives and dies with its message, a cached one belongs
// to the cache.
type AuthorRef struct {
	user      *User
	synthetic bool
}

// CachedAuthor references a user owned by the shared user cache.
func CachedAuthor(u *User) AuthorRef {
	return AuthorRef{user: u}
}

// SyntheticAuthor wraps a standalone user owned by the message.
func SyntheticAuthor(u *User) AuthorRef {
	return AuthorRef{user: u, synthetic: true}
}

// User returns the referenced user, or None for an authorless message.
func (a AuthorRef) User() mo.Option[*User] {
	if a.user == nil {
		return mo.None[*User]()
	}
	return mo.Some(a.user)
}

// ID returns the author's user ID, or the zero ID when absent.
func (a AuthorRef) ID() snowflake.ID {
	if a.user == nil {
		return 0
	}
	return a.user.ID
}

// Synthetic reports whether the author is owned by the message rather
// than the shared user cache.
func (a AuthorRef) Synthetic() bool {
	return a.synthetic
}
