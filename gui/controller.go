package gui

import (
	"github.com/osse101/MenuForge_Go/inventory"
	"github.com/osse101/MenuForge_Go/text"
)

// Policy defines interaction rules for one open menu.
type Policy struct {
	// AllowTake lets the viewer take unmarked items out of the menu.
	// Marked items can never be taken regardless of this flag.
	AllowTake bool
}

// DefaultPolicy denies taking anything out of the menu.
func DefaultPolicy() Policy {
	return Policy{}
}

// Controller owns one menu inventory and its click-dispatch table. It tracks
// the single current viewer and the open/closed state; the Layer builds the
// registration engine on top of it.
type Controller struct {
	title    text.Component
	inv      *inventory.Inventory
	policy   Policy
	handlers map[int]ClickHandler

	viewer     Viewer
	open       bool
	closeHooks []func()
}

// NewController creates a closed controller with its own inventory of the
// given size.
func NewController(size int, title text.Component, policy Policy) *Controller {
	return &Controller{
		title:    title,
		inv:      inventory.New(size),
		policy:   policy,
		handlers: make(map[int]ClickHandler),
	}
}

// Title returns the menu title.
func (c *Controller) Title() text.Component { return c.title }

// Inventory returns the managed slot array. Only the owning layer mutates
// it.
func (c *Controller) Inventory() *inventory.Inventory { return c.inv }

// Policy returns the interaction rules.
func (c *Controller) Policy() Policy { return c.policy }

// Viewer returns the current viewer, nil when the menu is closed.
func (c *Controller) Viewer() Viewer { return c.viewer }

// IsOpen reports whether a viewer currently has the menu open.
func (c *Controller) IsOpen() bool { return c.open }

// Open shows the menu to the viewer. A menu has exactly one viewer at a
// time; opening while already open replaces the viewer.
func (c *Controller) Open(viewer Viewer) {
	c.viewer = viewer
	c.open = true
}

// Close closes the menu, runs the close hooks and detaches the viewer.
// Closing an already closed menu is a no-op.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	for _, hook := range c.closeHooks {
		hook()
	}
	c.viewer = nil
}

// OnClose registers a hook to run when the menu closes.
func (c *Controller) OnClose(hook func()) {
	if hook != nil {
		c.closeHooks = append(c.closeHooks, hook)
	}
}

// HandleClick dispatches a click to the handler bound to its slot and
// reports whether the click must be cancelled by the host (the viewer may
// not take the clicked item). A slot with no handler is a no-op.
func (c *Controller) HandleClick(ev ClickEvent) bool {
	if !c.open {
		return false
	}

	cancel := !c.policy.AllowTake
	if stack := c.inv.Item(ev.Slot); stack != nil && Marked(stack) {
		cancel = true
	}

	if handler, ok := c.handlers[ev.Slot]; ok {
		handler(ev)
	}
	return cancel
}

// setSlotHandlers binds one handler to every given slot.
func (c *Controller) setSlotHandlers(slots []int, handler ClickHandler) {
	for _, slot := range slots {
		c.handlers[slot] = handler
	}
}

// removeSlotHandler unbinds the handler for one slot.
func (c *Controller) removeSlotHandler(slot int) {
	delete(c.handlers, slot)
}

// removeSlotHandlers unbinds the handlers for every given slot.
func (c *Controller) removeSlotHandlers(slots []int) {
	for _, slot := range slots {
		delete(c.handlers, slot)
	}
}
