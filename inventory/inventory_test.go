package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MenuForge_Go/item"
)

func TestOutOfRangeSlotsAreNoOps(t *testing.T) {
	inv := New(9)
	stack := item.NewStack(item.MaterialStone, 1)

	inv.SetItem(-1, stack)
	inv.SetItem(9, stack)
	inv.Clear(100)

	assert.Nil(t, inv.Item(-1))
	assert.Nil(t, inv.Item(9))
	assert.Empty(t, inv.Occupied())
}

func TestSetClearRoundTrip(t *testing.T) {
	inv := New(27)
	stack := item.NewStack(item.MaterialEmerald, 3)

	inv.SetItem(13, stack)
	assert.Same(t, stack, inv.Item(13))
	assert.Equal(t, []int{13}, inv.Occupied())

	inv.Clear(13)
	assert.Nil(t, inv.Item(13))

	inv.SetItem(0, stack)
	inv.SetItem(26, stack)
	inv.ClearAll()
	assert.Empty(t, inv.Occupied())
}

func TestSizeFallback(t *testing.T) {
	assert.Equal(t, DefaultSize, New(0).Size())
	assert.Equal(t, 18, New(18).Size())
}
