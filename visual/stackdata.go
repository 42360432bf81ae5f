package visual

import (
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/profile"
	"github.com/osse101/MenuForge_Go/scheduler"
	"github.com/osse101/MenuForge_Go/text"
)

// StackData is the Data implementation backed directly by an item.Stack.
// All mutators write through to the stack's metadata immediately; accessors
// on a stack without metadata degrade to neutral values.
type StackData struct {
	stack    *item.Stack
	material item.Material
	amount   int

	displayName *text.Component
	rawName     string
	lore        []text.Component
	rawLore     []string

	skullOwner   string
	skullTexture string

	resolver *profile.Resolver
	sched    scheduler.Scheduler
}

// NewStackData creates visual state for the given material and amount,
// using the process-wide profile resolver and inline skull application.
func NewStackData(material item.Material, amount int) *StackData {
	return NewStackDataWith(material, amount, nil, nil)
}

// NewStackDataWith creates visual state with an explicit profile resolver
// and scheduler for the skull-texture seam. A nil resolver uses the
// process-wide one; a nil scheduler applies skull profiles inline.
func NewStackDataWith(material item.Material, amount int, resolver *profile.Resolver, sched scheduler.Scheduler) *StackData {
	if material == "" {
		material = item.MaterialStone
	}
	if amount < 1 {
		amount = 1
	}
	if resolver == nil {
		resolver = profile.Default()
	}
	return &StackData{
		stack:    item.NewStack(material, amount),
		material: material,
		amount:   amount,
		resolver: resolver,
		sched:    sched,
	}
}

// updateMeta applies fn to the stack metadata when present. Metadata absence
// is a valid transient state, never an error.
func (d *StackData) updateMeta(fn func(meta *item.Meta)) {
	if meta := d.stack.Meta(); meta != nil {
		fn(meta)
	}
}

// SetMaterial changes the material, falling back to stone for the empty
// value.
func (d *StackData) SetMaterial(material item.Material) {
	if material == "" {
		material = item.MaterialStone
	}
	d.material = material
	d.stack.SetMaterial(material)
}

// Material returns the current material.
func (d *StackData) Material() item.Material { return d.material }

// SetAmount sets the stack amount, clamping below 1.
func (d *StackData) SetAmount(amount int) {
	if amount < 1 {
		amount = 1
	}
	d.amount = amount
	d.stack.SetAmount(amount)
}

// Amount returns the stack amount.
func (d *StackData) Amount() int { return d.amount }

// SetDisplayName sets the display name from its rich form. The raw form is
// invalidated; nil clears the name.
func (d *StackData) SetDisplayName(name *text.Component) {
	d.displayName = name
	d.rawName = ""
	d.updateMeta(func(meta *item.Meta) { meta.SetDisplayName(name) })
}

// SetRawDisplayName sets the display name from its legacy string form. The
// rich form is invalidated; the empty string clears the name.
func (d *StackData) SetRawDisplayName(name string) {
	d.rawName = name
	d.displayName = nil
	var comp *text.Component
	if name != "" {
		c := text.DeserializeLegacy(name)
		comp = &c
	}
	d.updateMeta(func(meta *item.Meta) { meta.SetDisplayName(comp) })
}

// DisplayName returns the rich display name, deriving and caching it from
// the raw form when needed. Returns nil when no name is set.
func (d *StackData) DisplayName() *text.Component {
	if d.displayName != nil {
		return d.displayName
	}
	if d.rawName == "" {
		return nil
	}
	c := text.DeserializeLegacy(d.rawName)
	d.displayName = &c
	return d.displayName
}

// RawDisplayName returns the legacy string form of the display name,
// deriving and caching it from the rich form when needed. Returns the empty
// string when no name is set.
func (d *StackData) RawDisplayName() string {
	if d.rawName != "" {
		return d.rawName
	}
	if d.displayName == nil {
		return ""
	}
	d.rawName = text.SerializeLegacy(*d.displayName)
	return d.rawName
}

// SetLore sets the lore from its rich form. The raw form is invalidated;
// nil clears the lore.
func (d *StackData) SetLore(lore []text.Component) {
	d.lore = lore
	d.rawLore = nil
	d.updateMeta(func(meta *item.Meta) { meta.SetLore(lore) })
}

// SetRawLore sets the lore from its legacy string form. The rich form is
// invalidated; nil clears the lore.
func (d *StackData) SetRawLore(lore []string) {
	d.rawLore = lore
	d.lore = nil
	var comps []text.Component
	if lore != nil {
		comps = make([]text.Component, len(lore))
		for i, line := range lore {
			comps[i] = text.DeserializeLegacy(line)
		}
	}
	d.updateMeta(func(meta *item.Meta) { meta.SetLore(comps) })
}

// Lore returns the rich lore lines, deriving and caching them from the raw
// form when needed. Returns nil when no lore is set.
func (d *StackData) Lore() []text.Component {
	if d.lore != nil {
		return d.lore
	}
	if d.rawLore == nil {
		return nil
	}
	d.lore = make([]text.Component, len(d.rawLore))
	for i, line := range d.rawLore {
		d.lore[i] = text.DeserializeLegacy(line)
	}
	return d.lore
}

// RawLore returns the legacy string lore lines, deriving and caching them
// from the rich form when needed. Returns nil when no lore is set.
func (d *StackData) RawLore() []string {
	if d.rawLore != nil {
		return d.rawLore
	}
	if d.lore == nil {
		return nil
	}
	d.rawLore = make([]string, len(d.lore))
	for i, line := range d.lore {
		d.rawLore[i] = text.SerializeLegacy(line)
	}
	return d.rawLore
}

// AddEnchant adds an enchantment, replacing any existing level.
func (d *StackData) AddEnchant(enchant item.Enchantment, level int) {
	d.updateMeta(func(meta *item.Meta) { meta.AddEnchant(enchant, level) })
}

// RemoveEnchant removes an enchantment.
func (d *StackData) RemoveEnchant(enchant item.Enchantment) {
	d.updateMeta(func(meta *item.Meta) { meta.RemoveEnchant(enchant) })
}

// RemoveEnchants removes every enchantment.
func (d *StackData) RemoveEnchants() {
	for enchant := range d.Enchants() {
		d.RemoveEnchant(enchant)
	}
}

// EnchantLevel returns the level of an enchantment, 0 when absent.
func (d *StackData) EnchantLevel(enchant item.Enchantment) int {
	return d.stack.Meta().EnchantLevel(enchant)
}

// Enchants returns all enchantments on the item.
func (d *StackData) Enchants() map[item.Enchantment]int {
	return d.stack.Meta().Enchants()
}

// AddFlag adds a tooltip flag.
func (d *StackData) AddFlag(flag item.Flag) {
	d.updateMeta(func(meta *item.Meta) { meta.AddFlag(flag) })
}

// AddFlags adds several tooltip flags.
func (d *StackData) AddFlags(flags []item.Flag) {
	for _, flag := range flags {
		d.AddFlag(flag)
	}
}

// RemoveFlag removes a tooltip flag.
func (d *StackData) RemoveFlag(flag item.Flag) {
	d.updateMeta(func(meta *item.Meta) { meta.RemoveFlag(flag) })
}

// HasFlag reports whether a tooltip flag is set.
func (d *StackData) HasFlag(flag item.Flag) bool {
	return d.stack.Meta().HasFlag(flag)
}

// Flags returns the set tooltip flags.
func (d *StackData) Flags() []item.Flag {
	return d.stack.Meta().Flags()
}

// SetCustomModelData sets or clears the model variant tag.
func (d *StackData) SetCustomModelData(data *int) {
	d.updateMeta(func(meta *item.Meta) { meta.SetCustomModelData(data) })
}

// CustomModelData returns the model variant tag, nil when unset.
func (d *StackData) CustomModelData() *int {
	return d.stack.Meta().CustomModelData()
}

// SetColor sets the leather armor color.
func (d *StackData) SetColor(color *item.Color) {
	d.updateMeta(func(meta *item.Meta) { meta.SetColor(color) })
}

// Color returns the leather armor color, nil when the material is not
// dyeable or no color is set.
func (d *StackData) Color() *item.Color {
	if !d.material.Dyeable() {
		return nil
	}
	return d.stack.Meta().Color()
}

// SetSkullOwner sets the skull owner by player name, clearing any texture,
// and forces the player-head material.
func (d *StackData) SetSkullOwner(playerName string) {
	d.skullOwner = playerName
	d.skullTexture = ""
	d.SetMaterial(item.MaterialPlayerHead)
	d.updateMeta(func(meta *item.Meta) { meta.SetSkullOwner(playerName) })
}

// SkullOwner returns the skull owner name, empty when unset.
func (d *StackData) SkullOwner() string { return d.skullOwner }

// SetSkullTexture sets the skull texture from a base64 payload, clearing any
// owner, and forces the player-head material. Profile resolution runs on the
// async context and is applied to the materialized stack by a continuation
// on the tick context; the texture is not guaranteed to be visible when this
// returns. An empty payload is ignored.
func (d *StackData) SetSkullTexture(base64 string) {
	if base64 == "" {
		return
	}
	d.skullTexture = base64
	d.skullOwner = ""
	d.SetMaterial(item.MaterialPlayerHead)

	if d.sched == nil {
		d.applyProfile(d.resolver.Resolve(base64), base64)
		return
	}
	d.sched.RunAsync(func() {
		resolved := d.resolver.Resolve(base64)
		d.sched.Run(func() {
			d.applyProfile(resolved, base64)
		})
	})
}

// applyProfile is the continuation that writes a resolved profile into the
// materialized stack. Stale resolutions (texture changed in the meantime)
// are dropped.
func (d *StackData) applyProfile(p *profile.Profile, base64 string) {
	if p == nil || d.skullTexture != base64 {
		return
	}
	d.updateMeta(func(meta *item.Meta) { meta.SetSkullProfile(p) })
}

// SkullTexture returns the base64 texture payload, empty when unset.
func (d *StackData) SkullTexture() string { return d.skullTexture }

// HasCustomSkullTexture reports whether a base64 texture is set.
func (d *StackData) HasCustomSkullTexture() bool { return d.skullTexture != "" }

// AddAttribute adds an attribute modifier.
func (d *StackData) AddAttribute(attribute item.Attribute, modifier item.AttributeModifier) {
	d.updateMeta(func(meta *item.Meta) { meta.AddAttribute(attribute, modifier) })
}

// RemoveAttribute removes every modifier of the attribute.
func (d *StackData) RemoveAttribute(attribute item.Attribute) {
	d.updateMeta(func(meta *item.Meta) { meta.RemoveAttribute(attribute) })
}

// Attributes returns the attribute modifier multimap.
func (d *StackData) Attributes() map[item.Attribute][]item.AttributeModifier {
	return d.stack.Meta().Attributes()
}

// Build returns the live materialized stack.
func (d *StackData) Build() *item.Stack { return d.stack }

// Clone returns an independent copy: the materialized stack and all owned
// collections are deep-copied, the resolver and scheduler references are
// shared.
func (d *StackData) Clone() Data {
	clone := *d
	clone.stack = d.stack.Clone()
	if d.displayName != nil {
		name := d.displayName.Clone()
		clone.displayName = &name
	}
	clone.lore = text.CloneLore(d.lore)
	if d.rawLore != nil {
		clone.rawLore = append([]string(nil), d.rawLore...)
	}
	return &clone
}
