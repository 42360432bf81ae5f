package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MenuForge_Go/gui"
	"github.com/osse101/MenuForge_Go/internal/logger"
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/placeholder"
	"github.com/osse101/MenuForge_Go/scheduler"
	"github.com/osse101/MenuForge_Go/text"
	"github.com/osse101/MenuForge_Go/visual"
)

// Sentinel errors for the menu loader
var (
	ErrInvalidDefinition = errors.New("invalid menu definition")
)

// Deps carries the collaborators a built layer needs. Scheduler and Engine
// may be nil; Skulls may be nil when no button uses a basehead material.
type Deps struct {
	Scheduler scheduler.Scheduler
	Skulls    *visual.SkullCache
	Engine    placeholder.Engine
}

// Loader loads, validates and builds menu definitions.
type Loader interface {
	Load(path string) (*MenuDef, error)
	Validate(def *MenuDef) error
	Build(def *MenuDef, deps Deps) (*gui.Layer, error)
}

type menuLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance.
func NewLoader() Loader {
	return &menuLoader{validate: validator.New()}
}

// Load reads and parses a menu JSON file.
func (l *menuLoader) Load(path string) (*MenuDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDefinitionFailed, err)
	}

	var def MenuDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf(ErrMsgParseDefinitionFailed, err)
	}

	logger.Info(LogMsgMenuLoaded, "path", path, "title", def.Title, "buttons", len(def.Buttons))
	return &def, nil
}

// Validate checks a definition against its struct tags and loader rules.
func (l *menuLoader) Validate(def *MenuDef) error {
	if def == nil {
		return fmt.Errorf("%w: %s", ErrInvalidDefinition, ErrMsgDefinitionNil)
	}
	if len(def.Buttons) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDefinition, ErrMsgNoButtonsDefined)
	}

	if err := l.validate.Struct(def); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	keys := make(map[string]bool, len(def.Buttons))
	for i := range def.Buttons {
		key := def.Buttons[i].Key
		if keys[key] {
			return fmt.Errorf("%w: %s: %q", ErrInvalidDefinition, ErrMsgDuplicateButtonKey, key)
		}
		keys[key] = true
	}
	return nil
}

// Build validates the definition and assembles a closed layer from it.
// Buttons register in ascending priority order under the overlay strategy,
// so the highest priority wins each contested slot while lower-priority
// buttons keep their uncontested slots.
func (l *menuLoader) Build(def *MenuDef, deps Deps) (*gui.Layer, error) {
	if err := l.Validate(def); err != nil {
		return nil, err
	}

	size := def.Size
	if size == 0 {
		size = DefaultMenuSize
	}

	layer := gui.NewLayer(
		size,
		text.DeserializeLegacy(def.Title),
		gui.Policy{AllowTake: def.AllowTake},
		deps.Scheduler,
	)

	ordered := make([]ButtonDef, len(def.Buttons))
	copy(ordered, def.Buttons)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	for i := range ordered {
		button := &ordered[i]
		layer.RegisterItemOverlay(l.buildButton(button, deps))
		logger.Debug(LogMsgButtonRegistered, "key", button.Key, "slots", button.Slots, "priority", button.Priority)
	}

	return layer, nil
}

// buildButton turns one definition into a GUI item.
func (l *menuLoader) buildButton(def *ButtonDef, deps Deps) *gui.Item {
	it := gui.NewItem(l.buildVisual(def, deps)).
		SetKey(def.Key).
		SetSlots(def.Slots...).
		SetMarker(def.Marked()).
		SetUpdate(def.Update)

	if def.Name != "" {
		it.SetName(def.Name)
	}
	if len(def.Lore) > 0 {
		it.SetLore(def.Lore)
	}
	if deps.Engine != nil {
		it.PlaceholderEngine(deps.Engine)
	}
	return it
}

// buildVisual materializes the button's visual model, routing basehead
// materials through the skull cache.
func (l *menuLoader) buildVisual(def *ButtonDef, deps Deps) visual.Data {
	var w *visual.Wrapper
	if payload, ok := strings.CutPrefix(def.Material, BaseHeadPrefix); ok && deps.Skulls != nil {
		w = deps.Skulls.Get(payload)
		w.Stack().SetAmount(def.StackAmount())
	} else {
		w = visual.NewWrapperOf(item.Material(def.Material), def.StackAmount())
	}

	if def.Enchanted {
		w.SetEnchanted(true)
	}
	if def.CustomModelData != nil {
		w.SetCustomModelData(def.CustomModelData)
	}
	if len(def.Flags) > 0 {
		flags := make([]item.Flag, len(def.Flags))
		for i, f := range def.Flags {
			flags[i] = item.Flag(f)
		}
		w.SetFlags(flags...)
	}

	return visual.Adapt(w)
}
