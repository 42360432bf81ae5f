package visual

import (
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/text"
)

// EnchantEntry pairs an enchantment with its level for declarative wrapper
// configuration.
type EnchantEntry struct {
	Enchant item.Enchantment
	Level   int
}

// Wrapper is the builder-oriented visual configuration surface. It keeps a
// declarative copy of every managed property and flushes the whole set into
// the wrapped stack on Update; the Set* mutators flush immediately.
//
// A nil flag list means the wrapper does not manage flags at all and leaves
// whatever the stack metadata already carries.
type Wrapper struct {
	stack           *item.Stack
	material        item.Material
	displayName     *text.Component
	lore            []text.Component
	customModelData *int
	enchanted       bool
	flags           []item.Flag
	enchantments    []EnchantEntry
	base64Skin      string
	color           *item.Color
}

// NewWrapper wraps an existing stack. The stack must not be nil.
func NewWrapper(stack *item.Stack) *Wrapper {
	return &Wrapper{
		stack:    stack,
		material: stack.Material(),
	}
}

// NewWrapperOf creates a wrapper around a fresh stack of the given material
// and amount.
func NewWrapperOf(material item.Material, amount int) *Wrapper {
	return NewWrapper(item.NewStack(material, amount))
}

// Update flushes every managed property into the wrapped stack's metadata.
// Call it after direct field mutation; the Set* methods call it themselves.
func (w *Wrapper) Update() {
	w.stack.SetMaterial(w.material)

	meta := w.stack.Meta()
	if meta == nil {
		return
	}

	meta.SetDisplayName(w.displayName)
	meta.SetLore(w.lore)
	meta.SetCustomModelData(w.customModelData)

	for _, entry := range w.enchantments {
		meta.AddEnchant(entry.Enchant, entry.Level)
	}
	if w.enchanted {
		meta.AddEnchant(item.GlintEnchant, 1)
	} else {
		meta.RemoveEnchant(item.GlintEnchant)
	}

	if w.flags != nil {
		for _, flag := range meta.Flags() {
			meta.RemoveFlag(flag)
		}
		for _, flag := range w.flags {
			meta.AddFlag(flag)
		}
	}

	if w.color != nil {
		meta.SetColor(w.color)
	}
}

// Apply runs fn against the wrapper and returns it, enabling fluent chains.
// A nil fn is ignored.
func (w *Wrapper) Apply(fn func(*Wrapper)) *Wrapper {
	if fn != nil {
		fn(w)
	}
	return w
}

// Stack returns the wrapped stack. This is what gets placed into an
// inventory.
func (w *Wrapper) Stack() *item.Stack {
	return w.stack
}

// SetStack replaces the wrapped stack and re-flushes the wrapper's
// configuration onto it. The stack must not be nil.
func (w *Wrapper) SetStack(stack *item.Stack) {
	w.stack = stack
	w.material = stack.Material()
	w.Update()
}

// Material returns the managed material.
func (w *Wrapper) Material() item.Material { return w.material }

// SetMaterial changes the managed material and flushes.
func (w *Wrapper) SetMaterial(material item.Material) {
	w.material = material
	w.Update()
}

// DisplayName returns the managed display name, nil when unset.
func (w *Wrapper) DisplayName() *text.Component { return w.displayName }

// SetDisplayName sets the display name and flushes. Nil clears the name.
func (w *Wrapper) SetDisplayName(name *text.Component) {
	w.displayName = name
	w.Update()
}

// Lore returns the managed lore lines, nil when unset.
func (w *Wrapper) Lore() []text.Component { return w.lore }

// SetLore sets the lore and flushes. Nil clears the lore.
func (w *Wrapper) SetLore(lore []text.Component) {
	w.lore = lore
	w.Update()
}

// CustomModelData returns the managed model variant, nil when unset.
func (w *Wrapper) CustomModelData() *int { return w.customModelData }

// SetCustomModelData sets the model variant and flushes. Nil clears it.
func (w *Wrapper) SetCustomModelData(data *int) {
	w.customModelData = data
	w.Update()
}

// Enchanted reports whether the glint effect is forced on.
func (w *Wrapper) Enchanted() bool { return w.enchanted }

// SetEnchanted toggles the cosmetic glint effect and flushes.
func (w *Wrapper) SetEnchanted(enchanted bool) {
	w.enchanted = enchanted
	w.Update()
}

// Flags returns the managed flag list, nil when the wrapper leaves flags
// alone.
func (w *Wrapper) Flags() []item.Flag { return w.flags }

// SetFlags replaces the managed flag list and flushes. Nil disables flag
// management.
func (w *Wrapper) SetFlags(flags ...item.Flag) {
	w.flags = flags
	w.Update()
}

// Enchantments returns the managed real enchantments.
func (w *Wrapper) Enchantments() []EnchantEntry { return w.enchantments }

// SetEnchantments replaces the managed enchantments and flushes.
func (w *Wrapper) SetEnchantments(enchantments []EnchantEntry) {
	w.enchantments = enchantments
	w.Update()
}

// Base64Skin returns the skull texture payload, empty when unset.
func (w *Wrapper) Base64Skin() string { return w.base64Skin }

// SetBase64Skin sets the skull texture payload and flushes. The payload is
// only materialized when the wrapper is adapted into a Data.
func (w *Wrapper) SetBase64Skin(base64 string) {
	w.base64Skin = base64
	if base64 != "" {
		w.material = item.MaterialPlayerHead
	}
	w.Update()
}

// Color returns the managed dye color, nil when unset.
func (w *Wrapper) Color() *item.Color { return w.color }

// SetColor sets the dye color and flushes. Nil clears it.
func (w *Wrapper) SetColor(color *item.Color) {
	w.color = color
	w.Update()
}

// Clone duplicates the wrapper: the wrapped stack and owned slices are
// copied, so the clone can diverge without touching the original.
func (w *Wrapper) Clone() *Wrapper {
	clone := *w
	clone.stack = w.stack.Clone()
	if w.displayName != nil {
		name := w.displayName.Clone()
		clone.displayName = &name
	}
	clone.lore = text.CloneLore(w.lore)
	if w.flags != nil {
		clone.flags = append([]item.Flag(nil), w.flags...)
	}
	if w.enchantments != nil {
		clone.enchantments = append([]EnchantEntry(nil), w.enchantments...)
	}
	if w.color != nil {
		color := *w.color
		clone.color = &color
	}
	return &clone
}

// Builder assembles a Wrapper fluently. Build constructs the wrapper and
// flushes its configuration once.
type Builder struct {
	material        item.Material
	amount          int
	displayName     *text.Component
	lore            []text.Component
	customModelData *int
	enchanted       bool
	flags           []item.Flag
	enchantments    []EnchantEntry
	base64Skin      string
	color           *item.Color
}

// NewBuilder starts a builder for the given material.
func NewBuilder(material item.Material) *Builder {
	return &Builder{material: material, amount: 1}
}

// Amount sets the stack amount.
func (b *Builder) Amount(amount int) *Builder {
	b.amount = amount
	return b
}

// DisplayName sets the display name component.
func (b *Builder) DisplayName(name *text.Component) *Builder {
	b.displayName = name
	return b
}

// Lore sets the lore lines.
func (b *Builder) Lore(lore []text.Component) *Builder {
	b.lore = lore
	return b
}

// CustomModelData sets the model variant.
func (b *Builder) CustomModelData(data *int) *Builder {
	b.customModelData = data
	return b
}

// Enchanted toggles the cosmetic glint.
func (b *Builder) Enchanted(enchanted bool) *Builder {
	b.enchanted = enchanted
	return b
}

// Flags sets the managed flag list.
func (b *Builder) Flags(flags ...item.Flag) *Builder {
	b.flags = flags
	return b
}

// Enchantments sets real enchantments.
func (b *Builder) Enchantments(enchantments ...EnchantEntry) *Builder {
	b.enchantments = enchantments
	return b
}

// Base64Skin sets the skull texture payload.
func (b *Builder) Base64Skin(base64 string) *Builder {
	b.base64Skin = base64
	return b
}

// Color sets the dye color.
func (b *Builder) Color(color *item.Color) *Builder {
	b.color = color
	return b
}

// Build constructs the wrapper and flushes the configuration into its stack.
func (b *Builder) Build() *Wrapper {
	w := NewWrapperOf(b.material, b.amount)
	w.displayName = b.displayName
	w.lore = b.lore
	w.customModelData = b.customModelData
	w.enchanted = b.enchanted
	w.flags = b.flags
	w.enchantments = b.enchantments
	w.base64Skin = b.base64Skin
	w.color = b.color
	if b.base64Skin != "" {
		w.material = item.MaterialPlayerHead
	}
	w.Update()
	return w
}
