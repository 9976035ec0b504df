package entities

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// MessageType represents Discord message types.
type MessageType int

// Discord message type constants. Values 13, 18 and 21 are reserved by
// the platform and must never be remapped.
const (
	MessageTypeDefault                                 MessageType = 0
	MessageTypeRecipientAdd                            MessageType = 1
	MessageTypeRecipientRemove                         MessageType = 2
	MessageTypeCall                                    MessageType = 3
	MessageTypeChannelNameChange                       MessageType = 4
	MessageTypeChannelIconChange                       MessageType = 5
	MessageTypeChannelPinnedMessage                    MessageType = 6
	MessageTypeGuildMemberJoin                         MessageType = 7
	MessageTypeUserPremiumGuildSubscription            MessageType = 8
	MessageTypeUserPremiumGuildSubscriptionTier1       MessageType = 9
	MessageTypeUserPremiumGuildSubscriptionTier2       MessageType = 10
	MessageTypeUserPremiumGuildSubscriptionTier3       MessageType = 11
	MessageTypeChannelFollowAdd                        MessageType = 12
	MessageTypeGuildDiscoveryDisqualified              MessageType = 14
	MessageTypeGuildDiscoveryRequalified               MessageType = 15
	MessageTypeGuildDiscoveryGracePeriodInitialWarning MessageType = 16
	MessageTypeGuildDiscoveryGracePeriodFinalWarning   MessageType = 17
	MessageTypeReply                                   MessageType = 19
	MessageTypeApplicationCommand                      MessageType = 20
	MessageTypeGuildInviteReminder                     MessageType = 22
)

var knownMessageTypes = map[MessageType]struct{}{
	MessageTypeDefault:                                 {},
	MessageTypeRecipientAdd:                            {},
	MessageTypeRecipientRemove:                         {},
	MessageTypeCall:                                    {},
	MessageTypeChannelNameChange:                       {},
	MessageTypeChannelIconChange:                       {},
	MessageTypeChannelPinnedMessage:                    {},
	MessageTypeGuildMemberJoin:                         {},
	MessageTypeUserPremiumGuildSubscription:            {},
	MessageTypeUserPremiumGuildSubscriptionTier1:       {},
	MessageTypeUserPremiumGuildSubscriptionTier2:       {},
	MessageTypeUserPremiumGuildSubscriptionTier3:       {},
	MessageTypeChannelFollowAdd:                        {},
	MessageTypeGuildDiscoveryDisqualified:              {},
	MessageTypeGuildDiscoveryRequalified:               {},
	MessageTypeGuildDiscoveryGracePeriodInitialWarning: {},
	MessageTypeGuildDiscoveryGracePeriodFinalWarning:   {},
	MessageTypeReply:                                   {},
	MessageTypeApplicationCommand:                      {},
	MessageTypeGuildInviteReminder:                     {},
}

// Known reports whether the value is an assigned message type. Unknown
// and reserved values still round-trip untouched; this only answers
// whether the client understands them.
func (t MessageType) Known() bool {
	_, ok := knownMessageTypes[t]
	return ok
}

// MessageFlags is the bitmask of message flags. Flags are stored as one
// integer and queried by bit test, never duplicated as booleans.
type MessageFlags uint8

const (
	// MessageFlagCrossposted marks a message published to subscribed
	// channels.
	MessageFlagCrossposted MessageFlags = 1 << 0
	// MessageFlagIsCrosspost marks a message that originated in
	// another channel.
	MessageFlagIsCrosspost MessageFlags = 1 << 1
	// MessageFlagSuppressEmbeds excludes embeds when the message is
	// serialized.
	MessageFlagSuppressEmbeds MessageFlags = 1 << 2
	// MessageFlagSourceMessageDeleted marks a crosspost whose source
	// was deleted.
	MessageFlagSourceMessageDeleted MessageFlags = 1 << 3
	// MessageFlagUrgent marks a message from the urgent message
	// system.
	MessageFlagUrgent MessageFlags = 1 << 4
	// MessageFlagEphemeral marks an interaction response visible only
	// to its invoker.
	MessageFlagEphemeral MessageFlags = 1 << 6
	// MessageFlagLoading marks a "bot is thinking" interaction
	// response.
	MessageFlagLoading MessageFlags = 1 << 7
)

// Flag bits a client may legally set when sending.
const (
	sendableFlags            = MessageFlagSuppressEmbeds
	interactionSendableFlags = MessageFlagSuppressEmbeds | MessageFlagEphemeral | MessageFlagLoading
)

// MessageReference points at the message a reply or crosspost
// originates from.
type MessageReference struct {
	MessageID snowflake.ID `json:"message_id,omitempty"`
	ChannelID snowflake.ID `json:"channel_id,omitempty"`
	GuildID   snowflake.ID `json:"guild_id,omitempty"`
	// FailIfNotExists makes the send error when the referenced message
	// is gone instead of degrading to a normal message.
	FailIfNotExists bool `json:"fail_if_not_exists,omitempty"`
}

// Message represents a message sent or received on Discord.
type Message struct {
	ID        snowflake.ID
	ChannelID snowflake.ID
	GuildID   snowflake.ID

	// Author references the sending user; see AuthorRef for the
	// ownership rules. Member carries the author's guild-scoped
	// attributes when the message was sent in a guild.
	Author AuthorRef
	Member GuildMember

	Content    string
	Components []Component

	Sent   time.Time
	Edited time.Time // zero if never edited

	TTS             bool
	MentionEveryone bool
	Mentions        []snowflake.ID
	MentionRoles    []snowflake.ID
	MentionChannels []snowflake.ID

	Attachments []Attachment
	Embeds      []Embed
	Reactions   []Reaction

	Nonce     string
	Pinned    bool
	WebhookID snowflake.ID
	Flags     MessageFlags
	Type      MessageType

	// Filename and FileContent describe an upload attached to an
	// outbound message; they never arrive on the wire.
	Filename    string
	FileContent []byte

	Reference mo.Option[MessageReference]
}

// NewMessage constructs an outbound message for a channel. A fresh UUID
// nonce is attached so the transport layer can correlate the send.
func NewMessage(channelID snowflake.ID, content string) *Message {
	return &Message{
		ChannelID: channelID,
		Content:   content,
		Type:      MessageTypeDefault,
		Nonce:     uuid.NewString(),
	}
}

// NewEmbedMessage constructs an outbound message carrying a single
// embed.
func NewEmbedMessage(channelID snowflake.ID, embed Embed) *Message {
	m := NewMessage(channelID, "")
	m.Embeds = []Embed{embed}
	return m
}

// EntityID implements cache.Keyed.
func (m *Message) EntityID() snowflake.ID {
	return m.ID
}

type mentionWire struct {
	ID snowflake.ID `json:"id"`
}

type messageWire struct {
	ID              snowflake.ID      `json:"id"`
	ChannelID       snowflake.ID      `json:"channel_id"`
	GuildID         snowflake.ID      `json:"guild_id"`
	Author          json.RawMessage   `json:"author"`
	Member          json.RawMessage   `json:"member"`
	Content         string            `json:"content"`
	Components      []Component       `json:"components"`
	Timestamp       string            `json:"timestamp"`
	EditedTimestamp string            `json:"edited_timestamp"`
	TTS             bool              `json:"tts"`
	MentionEveryone bool              `json:"mention_everyone"`
	Mentions        []mentionWire     `json:"mentions"`
	MentionRoles    []snowflake.ID    `json:"mention_roles"`
	MentionChannels []mentionWire     `json:"mention_channels"`
	Attachments     []Attachment      `json:"attachments"`
	Embeds          []Embed           `json:"embeds"`
	Reactions       []Reaction        `json:"reactions"`
	Nonce           json.RawMessage   `json:"nonce"`
	Pinned          bool              `json:"pinned"`
	WebhookID       snowflake.ID      `json:"webhook_id"`
	Type            MessageType       `json:"type"`
	Flags           MessageFlags      `json:"flags"`
	Reference       *MessageReference `json:"message_reference"`
}

// FillFromJSON populates the message from its wire document. The policy
// decides how the author user is materialized:
//
//   - Aggressive: resolve through the directory, storing the freshly
//     parsed user so later messages share it.
//   - Lazy: reuse a user already in the directory, otherwise keep a
//     synthetic copy private to this message.
//   - None: always synthesize; the directory is never touched.
//
// Webhook authors are always synthetic so one-shot webhook identities
// never pollute the shared user cache.
func (m *Message) FillFromJSON(data json.RawMessage, policy CachePolicy, users UserDirectory) error {
	var wire messageWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return malformed("message", err)
	}
	if wire.ID.IsZero() {
		return missingField("message", "id")
	}
	if wire.ChannelID.IsZero() {
		return missingField("message", "channel_id")
	}

	m.ID = wire.ID
	m.ChannelID = wire.ChannelID
	m.GuildID = wire.GuildID
	m.Content = wire.Content
	m.Components = wire.Components
	m.Sent = parseTimestamp(wire.Timestamp)
	m.Edited = parseTimestamp(wire.EditedTimestamp)
	m.TTS = wire.TTS
	m.MentionEveryone = wire.MentionEveryone
	m.Mentions = mentionIDs(wire.Mentions)
	m.MentionRoles = wire.MentionRoles
	m.MentionChannels = mentionIDs(wire.MentionChannels)
	m.Attachments = wire.Attachments
	m.Embeds = wire.Embeds
	m.Reactions = wire.Reactions
	m.Nonce = decodeNonce(wire.Nonce)
	m.Pinned = wire.Pinned
	m.WebhookID = wire.WebhookID
	m.Type = wire.Type
	m.Flags = wire.Flags
	if wire.Reference != nil {
		m.Reference = mo.Some(*wire.Reference)
	} else {
		m.Reference = mo.None[MessageReference]()
	}

	if err := m.fillAuthor(wire, policy, users); err != nil {
		return err
	}
	return nil
}

func (m *Message) fillAuthor(wire messageWire, policy CachePolicy, users UserDirectory) error {
	if len(wire.Author) == 0 || bytes.Equal(wire.Author, []byte("null")) {
		m.Author = AuthorRef{}
		return nil
	}
	author := new(User)
	if err := author.FillFromJSON(wire.Author); err != nil {
		return err
	}

	switch {
	case !wire.WebhookID.IsZero() || policy == CachePolicyNone || users == nil:
		m.Author = SyntheticAuthor(author)
	case policy == CachePolicyAggressive:
		users.StoreUser(author)
		m.Author = CachedAuthor(author)
	default: // CachePolicyLazy
		if cached, ok := users.FetchUser(author.ID).Get(); ok {
			m.Author = CachedAuthor(cached)
		} else {
			m.Author = SyntheticAuthor(author)
		}
	}

	// The member fragment carries the author's guild-scoped state. It
	// is optional and a bad fragment never fails the message.
	if len(wire.Member) > 0 && !bytes.Equal(wire.Member, []byte("null")) {
		var member GuildMember
		if err := member.FillFromJSON(wire.Member, nil, author); err == nil {
			member.GuildID = wire.GuildID
			m.Member = member
		}
	}
	return nil
}

func mentionIDs(mentions []mentionWire) []snowflake.ID {
	if len(mentions) == 0 {
		return nil
	}
	ids := make([]snowflake.ID, 0, len(mentions))
	for _, mention := range mentions {
		ids = append(ids, mention.ID)
	}
	return ids
}

// decodeNonce tolerates the wire sending a nonce as either a string or
// a bare integer.
func decodeNonce(raw json.RawMessage) string {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	return string(bytes.Trim(raw, `"`))
}

// BuildOptions selects the outbound shape of a built message.
type BuildOptions struct {
	// WithID includes the message ID, needed for edits but not sends.
	WithID bool
	// InteractionResponse widens the set of legal flag bits to include
	// ephemeral and loading.
	InteractionResponse bool
}

type messageBuildWire struct {
	ID         snowflake.ID      `json:"id,omitempty"`
	ChannelID  snowflake.ID      `json:"channel_id,omitempty"`
	Content    string            `json:"content,omitempty"`
	TTS        bool              `json:"tts,omitempty"`
	Nonce      string            `json:"nonce,omitempty"`
	Flags      MessageFlags      `json:"flags,omitempty"`
	Embeds     []Embed           `json:"embeds,omitempty"`
	Components []Component       `json:"components,omitempty"`
	Reference  *MessageReference `json:"message_reference,omitempty"`
}

// BuildJSON emits the outbound JSON document for this message as a
// string ready for the transport layer. Building is pure: no cache or
// message state is touched. Only flag bits legal for the outbound shape
// survive; everything else is masked off.
func (m *Message) BuildJSON(opts BuildOptions) (string, error) {
	legal := sendableFlags
	if opts.InteractionResponse {
		legal = interactionSendableFlags
	}
	wire := messageBuildWire{
		ChannelID:  m.ChannelID,
		Content:    m.Content,
		TTS:        m.TTS,
		Nonce:      m.Nonce,
		Flags:      m.Flags & legal,
		Embeds:     m.Embeds,
		Components: m.Components,
		Reference:  ptrFromOption(m.Reference),
	}
	if opts.WithID {
		wire.ID = m.ID
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// IsCrossposted reports whether the message was published to subscribed
// channels.
func (m *Message) IsCrossposted() bool {
	return m.Flags&MessageFlagCrossposted != 0
}

// IsCrosspost reports whether the message originated in another channel.
func (m *Message) IsCrosspost() bool {
	return m.Flags&MessageFlagIsCrosspost != 0
}

// SuppressEmbeds reports whether embeds are excluded when the message is
// serialized.
func (m *Message) SuppressEmbeds() bool {
	return m.Flags&MessageFlagSuppressEmbeds != 0
}

// IsSourceMessageDeleted reports whether the crosspost source was
// deleted.
func (m *Message) IsSourceMessageDeleted() bool {
	return m.Flags&MessageFlagSourceMessageDeleted != 0
}

// IsUrgent reports whether the message came from the urgent message
// system.
func (m *Message) IsUrgent() bool {
	return m.Flags&MessageFlagUrgent != 0
}

// IsEphemeral reports whether the message is visible only to the
// interaction invoker.
func (m *Message) IsEphemeral() bool {
	return m.Flags&MessageFlagEphemeral != 0
}

// IsLoading reports whether the message is a "bot is thinking"
// placeholder.
func (m *Message) IsLoading() bool {
	return m.Flags&MessageFlagLoading != 0
}

// SetContent sets the message body. Returns the message for chaining.
func (m *Message) SetContent(content string) *Message {
	m.Content = content
	return m
}

// SetFlags replaces the flag bitmask.
func (m *Message) SetFlags(flags MessageFlags) *Message {
	m.Flags = flags
	return m
}

// SetType sets the message type.
func (m *Message) SetType(t MessageType) *Message {
	m.Type = t
	return m
}

// SetFilename names the file to upload with this message.
func (m *Message) SetFilename(name string) *Message {
	m.Filename = name
	return m
}

// SetFileContent attaches raw upload bytes to this message.
func (m *Message) SetFileContent(content []byte) *Message {
	m.FileContent = content
	return m
}

// SetReference marks this message as a reply to another.
func (m *Message) SetReference(messageID, guildID, channelID snowflake.ID, failIfNotExists bool) *Message {
	m.Reference = mo.Some(MessageReference{
		MessageID:       messageID,
		ChannelID:       channelID,
		GuildID:         guildID,
		FailIfNotExists: failIfNotExists,
	})
	return m
}

// AddEmbed appends an embed.
func (m *Message) AddEmbed(e Embed) *Message {
	m.Embeds = append(m.Embeds, e)
	return m
}

// AddComponent appends a top-level component, normally an action row.
func (m *Message) AddComponent(c Component) *Message {
	m.Components = append(m.Components, c)
	return m
}
