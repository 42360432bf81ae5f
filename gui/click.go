package gui

import (
	"github.com/osse101/MenuForge_Go/placeholder"
)

// Viewer is the player looking at a menu. It is the same contract the
// placeholder engine resolves against.
type Viewer = placeholder.Viewer

// ClickType identifies how a slot was clicked.
type ClickType int

const (
	ClickLeft ClickType = iota
	ClickRight
	ClickShiftLeft
	ClickShiftRight
	ClickMiddle
	ClickDrop
)

// ClickEvent carries one inventory click into the menu layer.
type ClickEvent struct {
	Slot   int
	Type   ClickType
	Viewer Viewer
}

// ClickHandler reacts to a click on a slot owned by a GUI item.
type ClickHandler func(ev ClickEvent)
