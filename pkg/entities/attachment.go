package entities

import (
	"encoding/json"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// Attachment describes a file uploaded with a message. Attachments are
// plain values embedded in their message, never cached independently.
type Attachment struct {
	ID          snowflake.ID `json:"id"`
	Filename    string       `json:"filename"`
	Size        uint32       `json:"size"`
	URL         string       `json:"url"`
	ProxyURL    string       `json:"proxy_url"`
	Width       uint32       `json:"width"`
	Height      uint32       `json:"height"`
	ContentType string       `json:"content_type"`
}

// FillFromJSON populates the attachment from its wire fragment.
func (a *Attachment) FillFromJSON(data json.RawMessage) error {
	if err := json.Unmarshal(data, a); err != nil {
		return malformed("attachment", err)
	}
	return nil
}
