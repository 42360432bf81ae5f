// Package inventory holds the slot array a menu layer renders into. A layer
// owns its inventory exclusively; nothing else mutates it.
package inventory

import (
	"github.com/osse101/MenuForge_Go/item"
)

// DefaultSize is the chest size used when no explicit size is given.
const DefaultSize = 54

// Inventory is a fixed-size array of item slots. Out-of-range slot indices
// are silent no-ops on writes and nil on reads; a slot with no item holds
// nil.
type Inventory struct {
	slots []*item.Stack
}

// New creates an inventory with the given number of slots. Sizes below 1
// fall back to DefaultSize.
func New(size int) *Inventory {
	if size < 1 {
		size = DefaultSize
	}
	return &Inventory{slots: make([]*item.Stack, size)}
}

// Size returns the number of slots.
func (inv *Inventory) Size() int { return len(inv.slots) }

// Item returns the stack in a slot, or nil when the slot is empty or out of
// range.
func (inv *Inventory) Item(slot int) *item.Stack {
	if slot < 0 || slot >= len(inv.slots) {
		return nil
	}
	return inv.slots[slot]
}

// SetItem writes a stack into a slot. A nil stack clears the slot.
func (inv *Inventory) SetItem(slot int, stack *item.Stack) {
	if slot < 0 || slot >= len(inv.slots) {
		return
	}
	inv.slots[slot] = stack
}

// Clear empties a single slot.
func (inv *Inventory) Clear(slot int) {
	inv.SetItem(slot, nil)
}

// ClearAll empties every slot.
func (inv *Inventory) ClearAll() {
	for i := range inv.slots {
		inv.slots[i] = nil
	}
}

// Occupied returns the indices of non-empty slots in ascending order.
func (inv *Inventory) Occupied() []int {
	var out []int
	for i, s := range inv.slots {
		if s != nil {
			out = append(out, i)
		}
	}
	return out
}
