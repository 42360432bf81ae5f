package gui

import (
	"github.com/osse101/MenuForge_Go/internal/metrics"
	"github.com/osse101/MenuForge_Go/scheduler"
	"github.com/osse101/MenuForge_Go/text"
)

// Layer is the slot-registration engine for one open menu: it owns the
// collection of live items, resolves slot conflicts under the replace and
// overlay strategies, and keeps the inventory mirror synchronized with the
// registry.
//
// All Layer methods must run on the tick context; the host funnels
// registration, rendering and click dispatch onto one logical thread.
type Layer struct {
	*Controller

	sched scheduler.Scheduler
	items []*Item

	updateTask     scheduler.Task
	updatesEnabled bool
	updating       bool
}

// NewLayer creates a closed layer with its own inventory. The scheduler
// drives the optional auto-update loop and may be nil for layers that only
// update explicitly.
func NewLayer(size int, title text.Component, policy Policy, sched scheduler.Scheduler) *Layer {
	l := &Layer{
		Controller: NewController(size, title, policy),
		sched:      sched,
	}
	l.OnClose(l.DisableAutoUpdate)
	return l
}

// Open renders every registered item for the viewer and then shows the
// menu. The first render bypasses the per-item update flag.
func (l *Layer) Open(viewer Viewer) {
	l.UpdateAll(viewer, true)
	l.Controller.Open(viewer)
}

// Items returns the registered items. The slice is backed by the internal
// registry; treat it as read-only.
func (l *Layer) Items() []*Item {
	return l.items
}

// ItemAt returns the item occupying a slot, nil when the slot is empty.
func (l *Layer) ItemAt(slot int) *Item {
	for _, it := range l.items {
		if it.HasSlot(slot) {
			return it
		}
	}
	return nil
}

// RegisterItem registers an item under the replace strategy: any existing
// item occupying one of the target slots is fully unregistered, including
// its slots outside the overlap. Slots with no prior occupant are cleared of
// stale contents before the new item claims them. An item declaring zero
// slots is a silent no-op.
//
// Conflict resolution for every slot completes before the new item is bound
// or written; a partially applied registration is never observable.
func (l *Layer) RegisterItem(it *Item) {
	if it == nil || len(it.Slots()) == 0 {
		return
	}

	seen := make(map[int]struct{}, len(it.Slots()))
	for _, slot := range it.Slots() {
		if _, done := seen[slot]; done {
			continue
		}
		seen[slot] = struct{}{}

		if existing := l.ItemAt(slot); existing != nil {
			l.UnregisterItem(existing)
		} else {
			l.Inventory().Clear(slot)
		}
	}

	l.place(it)
	metrics.ItemsRegistered.WithLabelValues(metrics.StrategyReplace).Inc()
}

// RegisterItemOverlay registers an item under the overlay strategy: each
// target slot is stripped individually from its current owner, leaving the
// owner's other slots registered. An owner losing its last slot is fully
// removed. An item declaring zero slots is a silent no-op.
func (l *Layer) RegisterItemOverlay(it *Item) {
	if it == nil || len(it.Slots()) == 0 {
		return
	}

	for _, slot := range it.Slots() {
		l.UnregisterSlotOnly(slot)
	}

	l.place(it)
	metrics.ItemsRegistered.WithLabelValues(metrics.StrategyOverlay).Inc()
}

// place renders, binds and writes an item whose slots are already free.
func (l *Layer) place(it *Item) {
	stack := it.Render(l.Viewer())

	l.setSlotHandlers(it.Slots(), it.HandleClick)
	l.items = append(l.items, it)

	for _, slot := range it.Slots() {
		l.Inventory().SetItem(slot, stack)
	}
}

// UnregisterSlotOnly strips a single slot from its owning item, clearing
// the slot and its click binding. The owner keeps its other slots; losing
// the last one drops it from the registry. A slot with no occupant is a
// silent no-op.
func (l *Layer) UnregisterSlotOnly(slot int) {
	it := l.ItemAt(slot)
	if it == nil {
		return
	}

	it.RemoveSlot(slot)
	l.removeSlotHandler(slot)
	l.Inventory().Clear(slot)

	if len(it.Slots()) == 0 {
		l.drop(it)
	}
}

// UnregisterItemAt fully unregisters the item occupying a slot.
func (l *Layer) UnregisterItemAt(slot int) {
	if it := l.ItemAt(slot); it != nil {
		l.UnregisterItem(it)
	}
}

// UnregisterItem removes an item from the registry, clearing every slot it
// owned and all of its click bindings. An item not in the registry is a
// silent no-op.
func (l *Layer) UnregisterItem(it *Item) {
	if !l.registered(it) {
		return
	}
	l.drop(it)
	l.removeSlotHandlers(it.Slots())
	for _, slot := range it.Slots() {
		l.Inventory().Clear(slot)
	}
}

// UnregisterAllItems clears every registered item's slots and handlers and
// empties the registry.
func (l *Layer) UnregisterAllItems() {
	for _, it := range l.items {
		l.removeSlotHandlers(it.Slots())
		for _, slot := range it.Slots() {
			l.Inventory().Clear(slot)
		}
		metrics.ItemsUnregistered.Inc()
	}
	l.items = nil
}

func (l *Layer) registered(it *Item) bool {
	for _, existing := range l.items {
		if existing == it {
			return true
		}
	}
	return false
}

func (l *Layer) drop(it *Item) {
	for idx, existing := range l.items {
		if existing == it {
			l.items = append(l.items[:idx], l.items[idx+1:]...)
			metrics.ItemsUnregistered.Inc()
			return
		}
	}
}

// UpdateAll re-renders registered items for the viewer and rewrites their
// slots. With first false only items with the update flag participate; with
// first true every item is rendered regardless, which Open uses to force the
// initial render.
func (l *Layer) UpdateAll(viewer Viewer, first bool) {
	for _, it := range l.items {
		if !it.Update() && !first {
			continue
		}
		stack := it.Render(viewer)
		for _, slot := range it.Slots() {
			l.Inventory().SetItem(slot, stack)
		}
	}
}

// UpdateSlot re-renders the item occupying a slot for the current viewer
// and rewrites all of that item's slots. No viewer or no occupant is a
// silent no-op.
func (l *Layer) UpdateSlot(slot int) {
	if l.Viewer() == nil {
		return
	}
	it := l.ItemAt(slot)
	if it == nil {
		return
	}

	stack := it.Render(l.Viewer())
	for _, s := range it.Slots() {
		l.Inventory().SetItem(s, stack)
	}
}

// EnableAutoUpdate starts a recurring task that refreshes update-flagged
// items for the current viewer every periodTicks ticks. The task verifies
// on each tick that the layer is still open and the viewer still connected,
// and self-cancels otherwise. Enabling again replaces any running task;
// without a scheduler the call is a silent no-op.
func (l *Layer) EnableAutoUpdate(periodTicks int64) {
	if l.sched == nil {
		return
	}

	l.updatesEnabled = true
	if l.updateTask != nil {
		l.updateTask.Cancel()
	}

	l.updateTask = l.sched.RunTimer(func() {
		viewer := l.Viewer()
		if !l.updatesEnabled || !l.IsOpen() || viewer == nil || !viewer.Online() {
			l.DisableAutoUpdate()
			return
		}

		l.updating = true
		l.UpdateAll(viewer, false)
		l.updating = false
		metrics.UpdateTicks.Inc()
	}, periodTicks, periodTicks)
}

// DisableAutoUpdate cancels any pending auto-update task. Calling it twice
// is safe; closing the layer calls it automatically.
func (l *Layer) DisableAutoUpdate() {
	l.updatesEnabled = false
	if l.updateTask != nil {
		l.updateTask.Cancel()
		l.updateTask = nil
	}
}

// Updating reports whether a bulk auto-update pass is in progress.
func (l *Layer) Updating() bool {
	return l.updating
}
