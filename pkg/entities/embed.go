package entities

import (
	"encoding/json"
	"time"

	"github.com/samber/mo"
)

// Maximum length of an embed field value accepted by the platform.
const embedFieldValueLimit = 1000

// EmbedFooter is the footer line of an embed.
type EmbedFooter struct {
	Text     string `json:"text"`
	IconURL  string `json:"icon_url,omitempty"`
	ProxyURL string `json:"proxy_url,omitempty"`
}

// EmbedImage is an image, thumbnail or video in an embed. Dimensions are
// calculated by the platform and transmitted as strings.
type EmbedImage struct {
	URL      string `json:"url"`
	ProxyURL string `json:"proxy_url,omitempty"`
	Height   string `json:"height,omitempty"`
	Width    string `json:"width,omitempty"`
}

// EmbedProvider names the service an embed was scraped from. Received
// only; it cannot be sent.
type EmbedProvider struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// EmbedAuthor is the author block of an embed.
type EmbedAuthor struct {
	Name         string `json:"name,omitempty"`
	URL          string `json:"url,omitempty"`
	IconURL      string `json:"icon_url,omitempty"`
	ProxyIconURL string `json:"proxy_icon_url,omitempty"`
}

// EmbedField is one name/value pair in an embed's field list.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Embed is a rich content block within a message. Optional sub-objects
// are held as explicit present/absent options so that an absent footer
// is distinguishable from an empty one.
type Embed struct {
	Title       string
	Type        string
	Description string
	URL         string
	Timestamp   time.Time
	Color       uint32
	Footer      mo.Option[EmbedFooter]
	Image       mo.Option[EmbedImage]
	Thumbnail   mo.Option[EmbedImage]
	Video       mo.Option[EmbedImage]
	Provider    mo.Option[EmbedProvider]
	Author      mo.Option[EmbedAuthor]
	Fields      []EmbedField
}

type embedWire struct {
	Title       string         `json:"title,omitempty"`
	Type        string         `json:"type,omitempty"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url,omitempty"`
	Timestamp   string         `json:"timestamp,omitempty"`
	Color       uint32         `json:"color,omitempty"`
	Footer      *EmbedFooter   `json:"footer,omitempty"`
	Image       *EmbedImage    `json:"image,omitempty"`
	Thumbnail   *EmbedImage    `json:"thumbnail,omitempty"`
	Video       *EmbedImage    `json:"video,omitempty"`
	Provider    *EmbedProvider `json:"provider,omitempty"`
	Author      *EmbedAuthor   `json:"author,omitempty"`
	Fields      []EmbedField   `json:"fields,omitempty"`
}

// FillFromJSON populates the embed from its wire fragment. Missing
// sub-objects become absent options, not empty values.
func (e *Embed) FillFromJSON(data json.RawMessage) error {
	var wire embedWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return malformed("embed", err)
	}
	e.Title = wire.Title
	e.Type = wire.Type
	e.Description = wire.Description
	e.URL = wire.URL
	e.Timestamp = parseTimestamp(wire.Timestamp)
	e.Color = wire.Color
	e.Footer = optionFromPtr(wire.Footer)
	e.Image = optionFromPtr(wire.Image)
	e.Thumbnail = optionFromPtr(wire.Thumbnail)
	e.Video = optionFromPtr(wire.Video)
	e.Provider = optionFromPtr(wire.Provider)
	e.Author = optionFromPtr(wire.Author)
	e.Fields = wire.Fields
	return nil
}

// UnmarshalJSON lets embeds decode in place when nested under a message.
func (e *Embed) UnmarshalJSON(data []byte) error {
	return e.FillFromJSON(data)
}

// MarshalJSON emits the sendable subset of the embed. Provider and video
// blocks are received-only and are never included; absent sub-objects
// are omitted entirely rather than emitted as null.
func (e Embed) MarshalJSON() ([]byte, error) {
	return json.Marshal(embedWire{
		Title:       e.Title,
		Type:        e.Type,
		Description: e.Description,
		URL:         e.URL,
		Timestamp:   formatTimestamp(e.Timestamp),
		Color:       e.Color,
		Footer:      ptrFromOption(e.Footer),
		Image:       ptrFromOption(e.Image),
		Thumbnail:   ptrFromOption(e.Thumbnail),
		Author:      ptrFromOption(e.Author),
		Fields:      e.Fields,
	})
}

// SetTitle sets the embed title. Returns the embed for chaining.
func (e *Embed) SetTitle(text string) *Embed {
	e.Title = text
	return e
}

// SetDescription sets the embed description.
func (e *Embed) SetDescription(text string) *Embed {
	e.Description = text
	return e
}

// SetColor sets the embed accent colour.
func (e *Embed) SetColor(color uint32) *Embed {
	e.Color = color
	return e
}

// SetURL sets the embed URL.
func (e *Embed) SetURL(url string) *Embed {
	e.URL = url
	return e
}

// AddField appends a field. Values longer than the platform limit of
// 1000 characters are truncated.
func (e *Embed) AddField(name, value string, inline bool) *Embed {
	if len(value) > embedFieldValueLimit {
		value = value[:embedFieldValueLimit]
	}
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: inline})
	return e
}

// SetAuthor sets the embed author block.
func (e *Embed) SetAuthor(name, url, iconURL string) *Embed {
	e.Author = mo.Some(EmbedAuthor{Name: name, URL: url, IconURL: iconURL})
	return e
}

// SetFooter sets the embed footer.
func (e *Embed) SetFooter(text, iconURL string) *Embed {
	e.Footer = mo.Some(EmbedFooter{Text: text, IconURL: iconURL})
	return e
}

// SetProvider sets the provider block. Providers only appear on received
// embeds; builders never emit them.
func (e *Embed) SetProvider(name, url string) *Embed {
	e.Provider = mo.Some(EmbedProvider{Name: name, URL: url})
	return e
}

// SetImage sets the main image.
func (e *Embed) SetImage(url string) *Embed {
	e.Image = mo.Some(EmbedImage{URL: url})
	return e
}

// SetVideo sets the video block. Videos only appear on received embeds;
// builders never emit them.
func (e *Embed) SetVideo(url string) *Embed {
	e.Video = mo.Some(EmbedImage{URL: url})
	return e
}

// SetThumbnail sets the thumbnail image.
func (e *Embed) SetThumbnail(url string) *Embed {
	e.Thumbnail = mo.Some(EmbedImage{URL: url})
	return e
}

func optionFromPtr[T any](p *T) mo.Option[T] {
	if p == nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}

func ptrFromOption[T any](o mo.Option[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
