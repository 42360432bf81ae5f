// Package text implements the rich-text model used for item names and lore,
// including round-tripping with legacy ampersand-formatted strings.
package text

// Color is a text color, either one of the named constants or a hex value in
// the form "#rrggbb".
type Color string

// Named colors and their legacy code characters.
const (
	ColorBlack       Color = "black"
	ColorDarkBlue    Color = "dark_blue"
	ColorDarkGreen   Color = "dark_green"
	ColorDarkAqua    Color = "dark_aqua"
	ColorDarkRed     Color = "dark_red"
	ColorDarkPurple  Color = "dark_purple"
	ColorGold        Color = "gold"
	ColorGray        Color = "gray"
	ColorDarkGray    Color = "dark_gray"
	ColorBlue        Color = "blue"
	ColorGreen       Color = "green"
	ColorAqua        Color = "aqua"
	ColorRed         Color = "red"
	ColorLightPurple Color = "light_purple"
	ColorYellow      Color = "yellow"
	ColorWhite       Color = "white"
)

// Component is a styled text node. A component with Extra children acts as a
// container; leaf components carry the visible text.
type Component struct {
	Text          string      `json:"text"`
	Color         Color       `json:"color,omitempty"`
	Bold          bool        `json:"bold,omitempty"`
	Italic        bool        `json:"italic,omitempty"`
	Underlined    bool        `json:"underlined,omitempty"`
	Strikethrough bool        `json:"strikethrough,omitempty"`
	Obfuscated    bool        `json:"obfuscated,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// Plain returns an unstyled component holding the given text.
func Plain(s string) Component {
	return Component{Text: s}
}

// PlainText flattens the component tree into its raw text content,
// discarding all styling.
func (c Component) PlainText() string {
	out := c.Text
	for _, child := range c.Extra {
		out += child.PlainText()
	}
	return out
}

// IsEmpty reports whether the component carries no text at all.
func (c Component) IsEmpty() bool {
	if c.Text != "" {
		return false
	}
	for _, child := range c.Extra {
		if !child.IsEmpty() {
			return false
		}
	}
	return true
}

// styled reports whether the component carries any decoration or color.
func (c Component) styled() bool {
	return c.Color != "" || c.Bold || c.Italic || c.Underlined || c.Strikethrough || c.Obfuscated
}

// CloneLore returns an independent copy of a lore line slice. Components are
// value types but share their Extra backing arrays, so copies are explicit.
func CloneLore(lore []Component) []Component {
	if lore == nil {
		return nil
	}
	out := make([]Component, len(lore))
	for i, line := range lore {
		out[i] = line.Clone()
	}
	return out
}

// Clone returns a deep copy of the component tree.
func (c Component) Clone() Component {
	clone := c
	if c.Extra != nil {
		clone.Extra = make([]Component, len(c.Extra))
		for i, child := range c.Extra {
			clone.Extra[i] = child.Clone()
		}
	}
	return clone
}
