// Package gui implements the menu behavioral layer: the Item unit binding a
// visual model to slots, metadata and click behavior, the Controller owning
// one open inventory, and the Layer slot-registration engine on top of it.
package gui

import (
	"github.com/osse101/MenuForge_Go/internal/logger"
	"github.com/osse101/MenuForge_Go/internal/metrics"
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/placeholder"
	"github.com/osse101/MenuForge_Go/text"
	"github.com/osse101/MenuForge_Go/visual"
)

// Item binds one visual model to inventory slots, free-form metadata, an
// optional placeholder engine and an optional click handler. Items are
// long-lived and reusable across refresh cycles; all configuration methods
// return the item for fluent chaining.
//
// The item owns its visual data exclusively. The placeholder engine and
// click handler are externally supplied and only ever invoked, never
// mutated.
type Item struct {
	slots  []int
	data   visual.Data
	marker bool
	update bool
	key    string

	metadata        map[string]any
	placeholderMeta map[string]any

	engine  placeholder.Engine
	handler ClickHandler
}

// NewItem creates an item around an existing visual model. Items start
// marked so viewers cannot take them out of the menu.
func NewItem(data visual.Data) *Item {
	return &Item{
		data:            data,
		marker:          true,
		metadata:        make(map[string]any),
		placeholderMeta: make(map[string]any),
	}
}

// NewItemOf creates an item with a fresh visual model of the given material
// and amount.
func NewItemOf(material item.Material, amount int) *Item {
	return NewItem(visual.NewStackData(material, amount))
}

// NewItemFromWrapper creates an item from a builder-oriented wrapper by
// adapting it into the canonical visual model.
func NewItemFromWrapper(w *visual.Wrapper) *Item {
	return NewItem(visual.Adapt(w))
}

// Data returns the owned visual model.
func (i *Item) Data() visual.Data { return i.data }

// Slots returns the declared slot indices. Callers must not mutate the
// returned slice.
func (i *Item) Slots() []int { return i.slots }

// SetSlots replaces the declared slots.
func (i *Item) SetSlots(slots ...int) *Item {
	i.slots = append(i.slots[:0], slots...)
	return i
}

// AddSlot declares an additional slot.
func (i *Item) AddSlot(slot int) *Item {
	i.slots = append(i.slots, slot)
	return i
}

// AddSlots declares additional slots.
func (i *Item) AddSlots(slots ...int) *Item {
	i.slots = append(i.slots, slots...)
	return i
}

// RemoveSlot drops every occurrence of slot from the declared set.
func (i *Item) RemoveSlot(slot int) *Item {
	kept := i.slots[:0]
	for _, s := range i.slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	i.slots = kept
	return i
}

// RemoveSlots drops every occurrence of each given slot.
func (i *Item) RemoveSlots(slots ...int) *Item {
	for _, s := range slots {
		i.RemoveSlot(s)
	}
	return i
}

// ClearSlots drops all declared slots.
func (i *Item) ClearSlots() *Item {
	i.slots = i.slots[:0]
	return i
}

// HasSlot reports whether the item declares the slot.
func (i *Item) HasSlot(slot int) bool {
	for _, s := range i.slots {
		if s == slot {
			return true
		}
	}
	return false
}

// SetMarker toggles the duplication-prevention transform.
func (i *Item) SetMarker(marker bool) *Item {
	i.marker = marker
	return i
}

// Marker reports whether the materialized item gets the marker transform.
func (i *Item) Marker() bool { return i.marker }

// SetUpdate opts the item in or out of periodic refresh.
func (i *Item) SetUpdate(update bool) *Item {
	i.update = update
	return i
}

// Update reports whether the item participates in periodic refresh.
func (i *Item) Update() bool { return i.update }

// SetKey attaches an external identity string. The key is never used for
// equality inside the layer.
func (i *Item) SetKey(key string) *Item {
	i.key = key
	return i
}

// Key returns the external identity string, empty when unset.
func (i *Item) Key() string { return i.key }

// Set stores a metadata value under name.
func (i *Item) Set(name string, value any) *Item {
	i.metadata[name] = value
	return i
}

// Get returns the metadata value under name, nil when absent.
func (i *Item) Get(name string) any {
	return i.metadata[name]
}

// GetOrDefault returns the metadata value under name, or def when absent.
func (i *Item) GetOrDefault(name string, def any) any {
	if v, ok := i.metadata[name]; ok {
		return v
	}
	return def
}

// Has reports whether a metadata value exists under name.
func (i *Item) Has(name string) bool {
	_, ok := i.metadata[name]
	return ok
}

// Remove drops the metadata value under name.
func (i *Item) Remove(name string) *Item {
	delete(i.metadata, name)
	return i
}

// Metadata returns the backing metadata map. Treat it as read-only unless
// managing the item's lifecycle.
func (i *Item) Metadata() map[string]any { return i.metadata }

// SetPlaceholderMeta stores a value visible to the placeholder engine.
func (i *Item) SetPlaceholderMeta(name string, value any) *Item {
	i.placeholderMeta[name] = value
	return i
}

// PlaceholderEngine attaches the engine used to resolve per-viewer dynamic
// text. Nil detaches it.
func (i *Item) PlaceholderEngine(engine placeholder.Engine) *Item {
	i.engine = engine
	return i
}

// OnClick attaches the click handler. Nil detaches it.
func (i *Item) OnClick(handler ClickHandler) *Item {
	i.handler = handler
	return i
}

// HandleClick invokes the attached handler. Absence is a no-op.
func (i *Item) HandleClick(ev ClickEvent) {
	if i.handler != nil {
		i.handler(ev)
	}
}

// Name sets the rich display name on the visual model.
func (i *Item) Name(name *text.Component) *Item {
	i.data.SetDisplayName(name)
	return i
}

// Lore sets the rich lore on the visual model.
func (i *Item) Lore(lore []text.Component) *Item {
	i.data.SetLore(lore)
	return i
}

// SetName sets the display name from its legacy string form.
func (i *Item) SetName(name string) *Item {
	i.data.SetRawDisplayName(name)
	return i
}

// SetLore sets the lore from its legacy string form.
func (i *Item) SetLore(lore []string) *Item {
	i.data.SetRawLore(lore)
	return i
}

// BaseStack materializes the visual model without placeholder processing.
// The returned stack is a copy; the marker transform is applied when the
// item is marked.
func (i *Item) BaseStack() *item.Stack {
	stack := i.data.Build().Clone()
	if i.marker {
		Mark(stack)
	}
	return stack
}

// Render materializes the item for a viewer. When a placeholder engine is
// attached, display name and lore are replaced with their processed versions
// on the returned copy; the canonical visual model stays untouched. An
// engine failure is logged and the unprocessed text is kept, so rendering
// never fails. The marker transform is applied last.
func (i *Item) Render(viewer Viewer) *item.Stack {
	stack := i.data.Build().Clone()
	meta := stack.Meta()

	if i.engine != nil && meta != nil {
		ctx := placeholder.NewContext(viewer, i.placeholderMeta)

		if name := i.data.DisplayName(); name != nil {
			processed, err := i.engine.ProcessText(*name, ctx)
			if err != nil {
				logger.Warn(LogMsgPlaceholderNameFailed, "key", i.key, "error", err)
				metrics.PlaceholderErrors.Inc()
			} else {
				meta.SetDisplayName(&processed)
			}
		}

		if lore := i.data.Lore(); lore != nil {
			processed, err := i.engine.ProcessLore(text.CloneLore(lore), ctx)
			if err != nil {
				logger.Warn(LogMsgPlaceholderLoreFailed, "key", i.key, "error", err)
				metrics.PlaceholderErrors.Inc()
			} else {
				meta.SetLore(processed)
			}
		}
	}

	metrics.ItemsRendered.Inc()

	if i.marker {
		Mark(stack)
	}
	return stack
}

// StackFor is the cheap path: without a viewer or an engine it skips
// placeholder processing entirely.
func (i *Item) StackFor(viewer Viewer) *item.Stack {
	if viewer == nil || i.engine == nil {
		return i.BaseStack()
	}
	return i.Render(viewer)
}

// Clone copies the item: the visual model is deep-copied, slots and both
// metadata maps are copied, and the engine and click handler carry over by
// reference.
func (i *Item) Clone() *Item {
	clone := NewItem(i.data.Clone()).
		PlaceholderEngine(i.engine).
		OnClick(i.handler).
		SetKey(i.key).
		SetMarker(i.marker).
		SetUpdate(i.update).
		SetSlots(i.slots...)
	for k, v := range i.metadata {
		clone.metadata[k] = v
	}
	for k, v := range i.placeholderMeta {
		clone.placeholderMeta[k] = v
	}
	return clone
}
