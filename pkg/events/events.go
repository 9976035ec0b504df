// Package events materializes gateway event payloads into entities and
// publishes them through a state container. Handlers consume parsed JSON
// documents handed over by the transport layer; no I/O happens here.
package events

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/parsascontentcorner/discordstate/pkg/entities"
	"github.com/parsascontentcorner/discordstate/pkg/state"
)

// Gateway event type names handled by this layer.
const (
	EventGuildCreate   = "GUILD_CREATE"
	EventMessageCreate = "MESSAGE_CREATE"
)

// Envelope is the gateway frame around one event: opcode, sequence,
// event name and the event's data sub-document.
type Envelope struct {
	Op       int             `json:"op"`
	Sequence int64           `json:"s"`
	Type     string          `json:"t"`
	Data     json.RawMessage `json:"d"`
}

// Dispatch routes one envelope to its handler. Unknown event types are
// ignored; a client only tracks the events it understands. A handler
// error abandons that single event and never disturbs entities cached
// by earlier events.
func Dispatch(st *state.State, policy entities.CachePolicy, env Envelope) error {
	logger := st.Logger()
	switch env.Type {
	case EventGuildCreate:
		_, err := HandleGuildCreate(st, env.Data)
		return err
	case EventMessageCreate:
		_, err := HandleMessageCreate(st, policy, env.Data)
		return err
	default:
		logger.Debug("ignoring unhandled event", zap.String("type", env.Type))
		return nil
	}
}
