package gui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/placeholder"
	"github.com/osse101/MenuForge_Go/scheduler"
	"github.com/osse101/MenuForge_Go/text"
)

type stubViewer struct {
	name   string
	online bool
}

func (v *stubViewer) Name() string { return v.name }
func (v *stubViewer) Online() bool { return v.online }

func newTestLayer(sched scheduler.Scheduler) *Layer {
	return NewLayer(27, text.Plain("Test Menu"), DefaultPolicy(), sched)
}

func TestRegisterItemWritesSlotsAndBindsClicks(t *testing.T) {
	l := newTestLayer(nil)

	clicked := 0
	it := NewItemOf(item.MaterialStone, 1).
		SetSlots(3, 4).
		OnClick(func(ClickEvent) { clicked++ })
	l.RegisterItem(it)

	assert.Same(t, it, l.ItemAt(3))
	assert.Same(t, it, l.ItemAt(4))
	assert.NotNil(t, l.Inventory().Item(3))
	assert.NotNil(t, l.Inventory().Item(4))

	l.Controller.Open(&stubViewer{name: "steve", online: true})
	l.HandleClick(ClickEvent{Slot: 3})
	l.HandleClick(ClickEvent{Slot: 4})
	assert.Equal(t, 2, clicked)
}

func TestRegisterItemZeroSlotsIsNoOp(t *testing.T) {
	l := newTestLayer(nil)

	l.RegisterItem(NewItemOf(item.MaterialStone, 1))
	l.RegisterItemOverlay(NewItemOf(item.MaterialStone, 1))

	assert.Empty(t, l.Items())
}

func TestReplaceStrategyEvictsConflictingItemEntirely(t *testing.T) {
	l := newTestLayer(nil)

	x := NewItemOf(item.MaterialStone, 1).SetSlots(10, 11)
	y := NewItemOf(item.MaterialPaper, 1).SetSlots(11, 12)
	l.RegisterItem(x)
	l.RegisterItem(y)

	// X is gone entirely, including the non-overlapping slot 10
	assert.Nil(t, l.ItemAt(10))
	assert.Nil(t, l.Inventory().Item(10))
	assert.Same(t, y, l.ItemAt(11))
	assert.Same(t, y, l.ItemAt(12))
	require.Len(t, l.Items(), 1)
}

func TestOverlayStrategyStripsOnlyContestedSlot(t *testing.T) {
	l := newTestLayer(nil)

	x := NewItemOf(item.MaterialStone, 1).SetSlots(10, 11)
	y := NewItemOf(item.MaterialPaper, 1).SetSlots(11, 12)
	l.RegisterItem(x)
	l.RegisterItemOverlay(y)

	// X keeps slot 10 and stays registered
	assert.Same(t, x, l.ItemAt(10))
	assert.Same(t, y, l.ItemAt(11))
	assert.Same(t, y, l.ItemAt(12))
	assert.Len(t, l.Items(), 2)
	assert.Equal(t, []int{10}, x.Slots())
}

func TestOverlayRemovingLastSlotDropsItem(t *testing.T) {
	l := newTestLayer(nil)

	x := NewItemOf(item.MaterialStone, 1).SetSlots(11)
	y := NewItemOf(item.MaterialPaper, 1).SetSlots(11)
	l.RegisterItem(x)
	l.RegisterItemOverlay(y)

	assert.Len(t, l.Items(), 1)
	assert.Same(t, y, l.ItemAt(11))
}

func TestSlotOwnedByAtMostOneItem(t *testing.T) {
	l := newTestLayer(nil)

	l.RegisterItem(NewItemOf(item.MaterialStone, 1).SetSlots(1, 2, 3))
	l.RegisterItem(NewItemOf(item.MaterialPaper, 1).SetSlots(2, 3, 4))
	l.RegisterItemOverlay(NewItemOf(item.MaterialEmerald, 1).SetSlots(3))

	owners := make(map[int]int)
	for _, it := range l.Items() {
		for _, slot := range it.Slots() {
			owners[slot]++
		}
	}
	for slot, count := range owners {
		assert.LessOrEqual(t, count, 1, "slot %d has multiple owners", slot)
	}
}

func TestUnregisterSlotOnlyOnEmptySlotIsNoOp(t *testing.T) {
	l := newTestLayer(nil)
	l.UnregisterSlotOnly(5)
	assert.Empty(t, l.Items())
}

func TestUnregisterItemNotInRegistryIsNoOp(t *testing.T) {
	l := newTestLayer(nil)
	registered := NewItemOf(item.MaterialStone, 1).SetSlots(1)
	l.RegisterItem(registered)

	l.UnregisterItem(NewItemOf(item.MaterialPaper, 1).SetSlots(2))
	assert.Len(t, l.Items(), 1)
}

func TestUnregisterAllItemsResetsLayer(t *testing.T) {
	l := newTestLayer(nil)
	l.RegisterItem(NewItemOf(item.MaterialStone, 1).SetSlots(0, 1))
	l.RegisterItem(NewItemOf(item.MaterialPaper, 1).SetSlots(5))

	l.UnregisterAllItems()

	assert.Empty(t, l.Items())
	assert.Nil(t, l.Inventory().Item(0))
	assert.Nil(t, l.Inventory().Item(1))
	assert.Nil(t, l.Inventory().Item(5))
	assert.Empty(t, l.Inventory().Occupied())
}

func TestUpdateAllHonorsUpdateFlag(t *testing.T) {
	l := newTestLayer(nil)
	viewer := &stubViewer{name: "steve", online: true}

	static := NewItemOf(item.MaterialStone, 1).SetSlots(0)
	dynamic := NewItemOf(item.MaterialPaper, 1).SetSlots(1).SetUpdate(true)
	l.RegisterItem(static)
	l.RegisterItem(dynamic)

	// mutate both visuals, then run a non-first pass
	static.SetName("&cChanged Static")
	dynamic.SetName("&aChanged Dynamic")
	l.UpdateAll(viewer, false)

	staticShown := l.Inventory().Item(0)
	require.NotNil(t, staticShown)
	require.NotNil(t, staticShown.Meta())
	assert.Nil(t, staticShown.Meta().DisplayName(), "static item must keep its stale render")

	dynamicShown := l.Inventory().Item(1)
	require.NotNil(t, dynamicShown)
	require.NotNil(t, dynamicShown.Meta().DisplayName())
	assert.Equal(t, "Changed Dynamic", dynamicShown.Meta().DisplayName().PlainText())
}

func TestUpdateAllFirstForcesEveryItem(t *testing.T) {
	l := newTestLayer(nil)
	viewer := &stubViewer{name: "steve", online: true}

	static := NewItemOf(item.MaterialStone, 1).SetSlots(0)
	l.RegisterItem(static)

	static.SetName("&cFresh")
	l.UpdateAll(viewer, true)

	shown := l.Inventory().Item(0)
	require.NotNil(t, shown)
	require.NotNil(t, shown.Meta().DisplayName())
	assert.Equal(t, "Fresh", shown.Meta().DisplayName().PlainText())
}

func TestOpenForcesFirstRender(t *testing.T) {
	l := newTestLayer(nil)

	static := NewItemOf(item.MaterialStone, 1).SetSlots(0)
	l.RegisterItem(static)
	static.SetName("&bOpened")

	viewer := &stubViewer{name: "steve", online: true}
	l.Open(viewer)

	assert.True(t, l.IsOpen())
	assert.Same(t, viewer, l.Viewer())
	shown := l.Inventory().Item(0)
	require.NotNil(t, shown)
	assert.Equal(t, "Opened", shown.Meta().DisplayName().PlainText())
}

func TestUpdateSlotRewritesOnlyOwningItem(t *testing.T) {
	l := newTestLayer(nil)
	l.Controller.Open(&stubViewer{name: "steve", online: true})

	a := NewItemOf(item.MaterialStone, 1).SetSlots(0, 1)
	b := NewItemOf(item.MaterialPaper, 1).SetSlots(2)
	l.RegisterItem(a)
	l.RegisterItem(b)

	a.SetName("&eSlot Update")
	b.SetName("&eShould Not Appear")
	l.UpdateSlot(0)

	require.NotNil(t, l.Inventory().Item(0).Meta().DisplayName())
	require.NotNil(t, l.Inventory().Item(1).Meta().DisplayName(), "all slots of the owning item refresh")
	assert.Nil(t, l.Inventory().Item(2).Meta().DisplayName())
}

func TestUpdateSlotWithoutViewerIsNoOp(t *testing.T) {
	l := newTestLayer(nil)
	it := NewItemOf(item.MaterialStone, 1).SetSlots(0)
	l.RegisterItem(it)

	it.SetName("&eNope")
	l.UpdateSlot(0)

	assert.Nil(t, l.Inventory().Item(0).Meta().DisplayName())
}

func TestAutoUpdateRefreshesEachPeriod(t *testing.T) {
	sched := scheduler.NewManual()
	l := newTestLayer(sched)
	viewer := &stubViewer{name: "steve", online: true}

	dynamic := NewItemOf(item.MaterialPaper, 1).SetSlots(0).SetUpdate(true)
	l.RegisterItem(dynamic)
	l.Open(viewer)
	l.EnableAutoUpdate(2)

	dynamic.SetName("&aTicked")
	sched.Tick()
	assert.Nil(t, l.Inventory().Item(0).Meta().DisplayName(), "period not yet elapsed")

	sched.Tick()
	require.NotNil(t, l.Inventory().Item(0).Meta().DisplayName())
	assert.Equal(t, "Ticked", l.Inventory().Item(0).Meta().DisplayName().PlainText())
}

func TestAutoUpdateSelfCancelsWhenViewerOffline(t *testing.T) {
	sched := scheduler.NewManual()
	l := newTestLayer(sched)
	viewer := &stubViewer{name: "steve", online: true}

	l.RegisterItem(NewItemOf(item.MaterialStone, 1).SetSlots(0).SetUpdate(true))
	l.Open(viewer)
	l.EnableAutoUpdate(1)
	require.Equal(t, 1, sched.PendingTimers())

	viewer.online = false
	sched.Tick()
	assert.Equal(t, 0, sched.PendingTimers(), "loop must cancel itself")
}

func TestAutoUpdateCancelledOnClose(t *testing.T) {
	sched := scheduler.NewManual()
	l := newTestLayer(sched)

	l.Open(&stubViewer{name: "steve", online: true})
	l.EnableAutoUpdate(1)
	require.Equal(t, 1, sched.PendingTimers())

	l.Close()
	assert.Equal(t, 0, sched.PendingTimers())

	// double disable is safe
	l.DisableAutoUpdate()
	l.DisableAutoUpdate()
}

func TestHandleClickCancelPolicy(t *testing.T) {
	allow := NewLayer(9, text.Plain("Shop"), Policy{AllowTake: true}, nil)
	unmarked := NewItemOf(item.MaterialStone, 1).SetSlots(0).SetMarker(false)
	marked := NewItemOf(item.MaterialPaper, 1).SetSlots(1)
	allow.RegisterItem(unmarked)
	allow.RegisterItem(marked)
	allow.Controller.Open(&stubViewer{name: "steve", online: true})

	assert.False(t, allow.HandleClick(ClickEvent{Slot: 0}), "unmarked item under AllowTake may be taken")
	assert.True(t, allow.HandleClick(ClickEvent{Slot: 1}), "marked item can never be taken")

	deny := newTestLayer(nil)
	deny.RegisterItem(NewItemOf(item.MaterialStone, 1).SetSlots(0).SetMarker(false))
	deny.Controller.Open(&stubViewer{name: "steve", online: true})
	assert.True(t, deny.HandleClick(ClickEvent{Slot: 0}))
}

type failingEngine struct{}

func (failingEngine) ProcessText(c text.Component, _ placeholder.Context) (text.Component, error) {
	return c, errors.New("boom")
}

func (failingEngine) ProcessLore(lore []text.Component, _ placeholder.Context) ([]text.Component, error) {
	return lore, errors.New("boom")
}

func TestRegisterItemSurvivesFailingPlaceholderEngine(t *testing.T) {
	l := newTestLayer(nil)
	l.Controller.Open(&stubViewer{name: "steve", online: true})

	it := NewItemOf(item.MaterialStone, 1).
		SetSlots(0).
		SetName("&6Unprocessed").
		PlaceholderEngine(failingEngine{})
	l.RegisterItem(it)

	shown := l.Inventory().Item(0)
	require.NotNil(t, shown, "a broken placeholder must never prevent the menu from rendering")
	require.NotNil(t, shown.Meta().DisplayName())
	assert.Equal(t, "Unprocessed", shown.Meta().DisplayName().PlainText())
}
