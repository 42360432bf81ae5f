// Package placeholder defines the contract for the injected text-substitution
// capability that resolves per-player dynamic content in item names and lore.
// The framework invokes an engine; it never implements one.
package placeholder

import (
	"github.com/osse101/MenuForge_Go/text"
)

// Viewer is the player context placeholders are resolved against.
type Viewer interface {
	Name() string
	Online() bool
}

// Context carries everything an engine may substitute from: the viewer and
// the per-item placeholder metadata.
type Context interface {
	Viewer() Viewer
	Metadata() map[string]any
}

// Engine processes rich text. Implementations may fail; callers must treat a
// failure as "use the unprocessed input", never as fatal.
type Engine interface {
	ProcessText(c text.Component, ctx Context) (text.Component, error)
	ProcessLore(lore []text.Component, ctx Context) ([]text.Component, error)
}

type context struct {
	viewer   Viewer
	metadata map[string]any
}

// NewContext builds a Context from a viewer and an item's placeholder
// metadata. Either argument may be nil/empty.
func NewContext(viewer Viewer, metadata map[string]any) Context {
	return &context{viewer: viewer, metadata: metadata}
}

func (c *context) Viewer() Viewer { return c.viewer }

func (c *context) Metadata() map[string]any { return c.metadata }
