package entities

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/parsascontentcorner/discordstate/pkg/snowflake"
)

// ComponentType tags a node in a message's component tree.
type ComponentType uint8

const (
	// ComponentTypeNone is the tag of a freshly constructed component
	// before any mutator has run.
	ComponentTypeNone ComponentType = 0
	// ComponentTypeActionRow is a container for buttons.
	ComponentTypeActionRow ComponentType = 1
	// ComponentTypeButton is a clickable button.
	ComponentTypeButton ComponentType = 2
)

// ButtonStyle selects a button's appearance and behaviour.
type ButtonStyle uint8

const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	// ButtonStyleLink buttons open their URL instead of emitting a
	// click event, and carry no custom ID.
	ButtonStyleLink ButtonStyle = 5
)

// ComponentEmoji decorates a button. Built-in unicode emoji are named by
// their literal character; custom guild emoji are referenced by ID.
type ComponentEmoji struct {
	Name     string       `json:"name,omitempty"`
	ID       snowflake.ID `json:"id,omitempty"`
	Animated bool         `json:"animated,omitempty"`
}

func (ce ComponentEmoji) empty() bool {
	return ce.Name == "" && ce.ID.IsZero()
}

// Component is one node of the recursive component tree: an action row
// holding buttons, or a button leaf. Mutators retag the component
// through an explicit transition table, so building a button then
// adding children turns it into an action row, exactly as the platform
// expects trees to be shaped. The retagging is an affordance, not a
// guarantee; Validate reports trees a caller has made inconsistent.
type Component struct {
	Type       ComponentType  `json:"type"`
	Components []Component    `json:"components,omitempty"`
	Label      string         `json:"label,omitempty" validate:"max=80"`
	Style      ButtonStyle    `json:"style,omitempty"`
	CustomID   string         `json:"custom_id,omitempty" validate:"max=100"`
	URL        string         `json:"url,omitempty" validate:"max=512"`
	Disabled   bool           `json:"disabled,omitempty"`
	Emoji      ComponentEmoji `json:"-"`
}

// componentMutation enumerates the mutators that may retag a component.
type componentMutation uint8

const (
	mutateLabel componentMutation = iota
	mutateStyle
	mutateCustomID
	mutateURL
	mutateEmoji
	mutateDisabled
	mutateAddChild
)

// componentTransitions is the (current tag, mutation) -> new tag table.
// Every button-only mutator lands on button and adding a child lands on
// action row, regardless of the prior tag.
var componentTransitions = map[ComponentType]map[componentMutation]ComponentType{
	ComponentTypeNone: {
		mutateLabel:    ComponentTypeButton,
		mutateStyle:    ComponentTypeButton,
		mutateCustomID: ComponentTypeButton,
		mutateURL:      ComponentTypeButton,
		mutateEmoji:    ComponentTypeButton,
		mutateDisabled: ComponentTypeButton,
		mutateAddChild: ComponentTypeActionRow,
	},
	ComponentTypeActionRow: {
		mutateLabel:    ComponentTypeButton,
		mutateStyle:    ComponentTypeButton,
		mutateCustomID: ComponentTypeButton,
		mutateURL:      ComponentTypeButton,
		mutateEmoji:    ComponentTypeButton,
		mutateDisabled: ComponentTypeButton,
		mutateAddChild: ComponentTypeActionRow,
	},
	ComponentTypeButton: {
		mutateLabel:    ComponentTypeButton,
		mutateStyle:    ComponentTypeButton,
		mutateCustomID: ComponentTypeButton,
		mutateURL:      ComponentTypeButton,
		mutateEmoji:    ComponentTypeButton,
		mutateDisabled: ComponentTypeButton,
		mutateAddChild: ComponentTypeActionRow,
	},
}

func (c *Component) transition(m componentMutation) {
	if next, ok := componentTransitions[c.Type][m]; ok {
		c.Type = next
	}
}

// SetType sets the component tag directly. Mutators normally keep the
// tag correct, so this is rarely needed.
func (c *Component) SetType(t ComponentType) *Component {
	c.Type = t
	return c
}

// SetLabel sets the button text and retags the component as a button.
func (c *Component) SetLabel(label string) *Component {
	c.Label = label
	c.transition(mutateLabel)
	return c
}

// SetStyle sets the button style and retags the component as a button.
func (c *Component) SetStyle(style ButtonStyle) *Component {
	c.Style = style
	c.transition(mutateStyle)
	return c
}

// SetID sets the custom ID reported on click events and retags the
// component as a button.
func (c *Component) SetID(id string) *Component {
	c.CustomID = id
	c.transition(mutateCustomID)
	return c
}

// SetURL sets the link target, forces the link style and retags the
// component as a button.
func (c *Component) SetURL(url string) *Component {
	c.URL = url
	c.Style = ButtonStyleLink
	c.transition(mutateURL)
	return c
}

// SetEmoji decorates the button with an emoji and retags the component
// as a button. For unicode emoji pass the literal character as name and
// the zero ID; for custom emoji pass the guild emoji's ID.
func (c *Component) SetEmoji(name string, id snowflake.ID, animated bool) *Component {
	c.Emoji = ComponentEmoji{Name: name, ID: id, Animated: animated}
	c.transition(mutateEmoji)
	return c
}

// SetDisabled greys the button out and retags the component as a button.
func (c *Component) SetDisabled(disabled bool) *Component {
	c.Disabled = disabled
	c.transition(mutateDisabled)
	return c
}

// AddComponent appends a child and retags the component as an action
// row, whatever it was before.
func (c *Component) AddComponent(child Component) *Component {
	c.Components = append(c.Components, child)
	c.transition(mutateAddChild)
	return c
}

type componentWire struct {
	Type       ComponentType   `json:"type"`
	Components []Component     `json:"components,omitempty"`
	Label      string          `json:"label,omitempty"`
	Style      ButtonStyle     `json:"style,omitempty"`
	CustomID   string          `json:"custom_id,omitempty"`
	URL        string          `json:"url,omitempty"`
	Disabled   bool            `json:"disabled,omitempty"`
	Emoji      *ComponentEmoji `json:"emoji,omitempty"`
}

// FillFromJSON populates the component (and its subtree) from its wire
// fragment.
func (c *Component) FillFromJSON(data json.RawMessage) error {
	var wire componentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return malformed("component", err)
	}
	c.Type = wire.Type
	c.Components = wire.Components
	c.Label = wire.Label
	c.Style = wire.Style
	c.CustomID = wire.CustomID
	c.URL = wire.URL
	c.Disabled = wire.Disabled
	if wire.Emoji != nil {
		c.Emoji = *wire.Emoji
	} else {
		c.Emoji = ComponentEmoji{}
	}
	return nil
}

// UnmarshalJSON lets component trees decode in place when nested under a
// message.
func (c *Component) UnmarshalJSON(data []byte) error {
	return c.FillFromJSON(data)
}

// MarshalJSON emits the component subtree in wire form, omitting the
// emoji key when no emoji is set.
func (c Component) MarshalJSON() ([]byte, error) {
	wire := componentWire{
		Type:       c.Type,
		Components: c.Components,
		Label:      c.Label,
		Style:      c.Style,
		CustomID:   c.CustomID,
		URL:        c.URL,
		Disabled:   c.Disabled,
	}
	if !c.Emoji.empty() {
		emoji := c.Emoji
		wire.Emoji = &emoji
	}
	return json.Marshal(wire)
}

// BuildJSON emits the component subtree as a JSON document string ready
// for the transport layer.
func (c Component) BuildJSON() (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var componentValidate = validator.New()

// Validate checks the component subtree against the platform's limits.
// Mutators never call it; a caller is free to send an inconsistent tree
// and let the platform reject it, but well-behaved callers validate
// before building.
func (c Component) Validate() error {
	// Children are validated by the explicit recursion below so their
	// errors carry the child index; keep the tag pass shallow.
	shallow := c
	shallow.Components = nil
	if err := componentValidate.Struct(shallow); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("component: field %s violates %s=%s", f.Field(), f.Tag(), f.Param())
		}
		return fmt.Errorf("component: %w", err)
	}
	switch c.Type {
	case ComponentTypeButton:
		if len(c.Components) > 0 {
			return errors.New("component: button cannot contain children")
		}
		if c.Style == ButtonStyleLink {
			if c.URL == "" {
				return errors.New("component: link button requires a url")
			}
			if c.CustomID != "" {
				return errors.New("component: link button cannot carry a custom id")
			}
		} else if c.URL != "" {
			return errors.New("component: url is only valid on link buttons")
		}
		if c.Emoji.empty() && c.Emoji.Animated {
			return errors.New("component: animated flag requires an emoji name or id")
		}
	case ComponentTypeActionRow:
		for i, child := range c.Components {
			if child.Type == ComponentTypeActionRow {
				return fmt.Errorf("component: child %d: action rows cannot nest", i)
			}
			if err := child.Validate(); err != nil {
				return fmt.Errorf("component: child %d: %w", i, err)
			}
		}
	}
	return nil
}
