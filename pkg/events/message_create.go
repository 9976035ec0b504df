package events

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/parsascontentcorner/discordstate/pkg/entities"
	"github.com/parsascontentcorner/discordstate/pkg/state"
)

// HandleMessageCreate materializes one received message and stores it in
// the message cache. The cache policy decides whether the author is
// resolved through the shared user cache or kept private to the message.
func HandleMessageCreate(st *state.State, policy entities.CachePolicy, data json.RawMessage) (*entities.Message, error) {
	logger := st.Logger()

	message := &entities.Message{}
	if err := message.FillFromJSON(data, policy, st); err != nil {
		return nil, err
	}
	st.Messages.Store(message)

	logger.Debug("message cached",
		zap.Stringer("message_id", message.ID),
		zap.Stringer("channel_id", message.ChannelID),
		zap.Stringer("author_id", message.Author.ID()),
		zap.Bool("synthetic_author", message.Author.Synthetic()),
	)
	return message, nil
}
