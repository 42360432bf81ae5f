package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MenuForge_Go/gui"
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/profile"
	"github.com/osse101/MenuForge_Go/visual"
)

func writeDefinition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validDefinition = `{
	"title": "&8Main Menu",
	"size": 27,
	"buttons": [
		{
			"key": "info",
			"material": "paper",
			"name": "&6Info",
			"lore": ["&7Click for help"],
			"slots": [13]
		},
		{
			"key": "filler",
			"material": "gray_stained_glass_pane",
			"slots": [0, 1, 2],
			"priority": 0
		},
		{
			"key": "featured",
			"material": "emerald",
			"slots": [1],
			"priority": 10,
			"update": true,
			"enchanted": true
		}
	]
}`

func TestLoadParsesDefinition(t *testing.T) {
	loader := NewLoader()

	def, err := loader.Load(writeDefinition(t, validDefinition))
	require.NoError(t, err)

	assert.Equal(t, "&8Main Menu", def.Title)
	assert.Equal(t, 27, def.Size)
	require.Len(t, def.Buttons, 3)
	assert.Equal(t, "info", def.Buttons[0].Key)
	assert.True(t, def.Buttons[0].Marked(), "marker defaults to true")
	assert.Equal(t, 1, def.Buttons[0].StackAmount())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := NewLoader().Load(writeDefinition(t, `{"title": `))
	assert.Error(t, err)
}

func TestValidateRejectsBadDefinitions(t *testing.T) {
	loader := NewLoader()

	tests := []struct {
		name string
		def  *MenuDef
	}{
		{name: "nil definition", def: nil},
		{name: "no buttons", def: &MenuDef{Title: "Menu"}},
		{
			name: "missing title",
			def: &MenuDef{
				Buttons: []ButtonDef{{Key: "a", Material: "stone", Slots: []int{0}}},
			},
		},
		{
			name: "button without slots",
			def: &MenuDef{
				Title:   "Menu",
				Buttons: []ButtonDef{{Key: "a", Material: "stone"}},
			},
		},
		{
			name: "duplicate button keys",
			def: &MenuDef{
				Title: "Menu",
				Buttons: []ButtonDef{
					{Key: "a", Material: "stone", Slots: []int{0}},
					{Key: "a", Material: "paper", Slots: []int{1}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.def)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
		})
	}
}

func TestBuildAssemblesLayer(t *testing.T) {
	loader := NewLoader()
	def, err := loader.Load(writeDefinition(t, validDefinition))
	require.NoError(t, err)

	layer, err := loader.Build(def, Deps{})
	require.NoError(t, err)

	assert.Equal(t, 27, layer.Inventory().Size())
	assert.Equal(t, "Main Menu", layer.Title().PlainText())

	info := layer.ItemAt(13)
	require.NotNil(t, info)
	assert.Equal(t, "info", info.Key())
	assert.Equal(t, "&6Info", info.Data().RawDisplayName())
	require.Len(t, info.Data().RawLore(), 1)
}

func TestBuildPriorityWinsContestedSlot(t *testing.T) {
	loader := NewLoader()
	def, err := loader.Load(writeDefinition(t, validDefinition))
	require.NoError(t, err)

	layer, err := loader.Build(def, Deps{})
	require.NoError(t, err)

	// featured (priority 10) wins slot 1 from filler (priority 0)
	featured := layer.ItemAt(1)
	require.NotNil(t, featured)
	assert.Equal(t, "featured", featured.Key())
	assert.True(t, featured.Update())
	assert.Equal(t, 1, featured.Data().EnchantLevel(item.GlintEnchant))

	// filler keeps its uncontested slots
	filler := layer.ItemAt(0)
	require.NotNil(t, filler)
	assert.Equal(t, "filler", filler.Key())
	assert.Same(t, filler, layer.ItemAt(2))
}

func TestBuildDefaultSize(t *testing.T) {
	loader := NewLoader()
	def := &MenuDef{
		Title:   "Menu",
		Buttons: []ButtonDef{{Key: "a", Material: "stone", Slots: []int{0}}},
	}

	layer, err := loader.Build(def, Deps{})
	require.NoError(t, err)
	assert.Equal(t, DefaultMenuSize, layer.Inventory().Size())
}

func TestBuildBaseheadButton(t *testing.T) {
	loader := NewLoader()
	def := &MenuDef{
		Title: "Heads",
		Buttons: []ButtonDef{
			{Key: "head", Material: "basehead-dGV4dHVyZQ==", Slots: []int{4}},
		},
	}

	deps := Deps{Skulls: visual.NewSkullCache(8, profile.NewResolver(8))}
	layer, err := loader.Build(def, deps)
	require.NoError(t, err)

	head := layer.ItemAt(4)
	require.NotNil(t, head)
	assert.Equal(t, item.MaterialPlayerHead, head.Data().Material())
	assert.True(t, head.Data().HasCustomSkullTexture())
}

func TestBuildInvalidDefinitionFails(t *testing.T) {
	_, err := NewLoader().Build(&MenuDef{}, Deps{})
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

var _ gui.Viewer = (*viewerStub)(nil)

type viewerStub struct{}

func (viewerStub) Name() string { return "steve" }
func (viewerStub) Online() bool { return true }

func TestBuiltLayerOpens(t *testing.T) {
	loader := NewLoader()
	def, err := loader.Load(writeDefinition(t, validDefinition))
	require.NoError(t, err)

	layer, err := loader.Build(def, Deps{})
	require.NoError(t, err)

	layer.Open(viewerStub{})
	assert.True(t, layer.IsOpen())
	assert.NotNil(t, layer.Inventory().Item(13))
}
