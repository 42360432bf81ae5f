package item

import (
	"github.com/osse101/MenuForge_Go/profile"
	"github.com/osse101/MenuForge_Go/text"
)

// Stack is a concrete renderable item: material, amount and metadata.
// Air stacks carry no metadata object; accessors on a missing metadata
// object degrade to neutral values rather than failing.
type Stack struct {
	material Material
	amount   int
	meta     *Meta
}

// NewStack creates a stack of the given material. Amounts below 1 are
// clamped to 1.
func NewStack(material Material, amount int) *Stack {
	s := &Stack{material: material, amount: max(1, amount)}
	if material != MaterialAir {
		s.meta = newMeta()
	}
	return s
}

// Material returns the stack's material.
func (s *Stack) Material() Material { return s.material }

// SetMaterial changes the stack's material. Switching away from air creates
// a fresh metadata object; switching to air drops it.
func (s *Stack) SetMaterial(material Material) {
	if material == "" {
		material = MaterialStone
	}
	s.material = material
	if material == MaterialAir {
		s.meta = nil
	} else if s.meta == nil {
		s.meta = newMeta()
	}
}

// Amount returns the stack amount.
func (s *Stack) Amount() int { return s.amount }

// SetAmount sets the stack amount, clamping below 1.
func (s *Stack) SetAmount(amount int) { s.amount = max(1, amount) }

// Meta returns the metadata object, or nil for materials that carry none.
func (s *Stack) Meta() *Meta { return s.meta }

// Clone returns a fully independent copy of the stack and its metadata.
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	clone := &Stack{material: s.material, amount: s.amount}
	if s.meta != nil {
		clone.meta = s.meta.clone()
	}
	return clone
}

// Meta holds the mutable display metadata of a stack.
type Meta struct {
	displayName   *text.Component
	lore          []text.Component
	enchants      map[Enchantment]int
	flags         map[Flag]struct{}
	modelData     *int
	color         *Color
	skullOwner    string
	skullProfile  *profile.Profile
	tags          map[string]string
	attributeMods map[Attribute][]AttributeModifier
}

func newMeta() *Meta {
	return &Meta{
		enchants:      make(map[Enchantment]int),
		flags:         make(map[Flag]struct{}),
		tags:          make(map[string]string),
		attributeMods: make(map[Attribute][]AttributeModifier),
	}
}

// DisplayName returns the display name, or nil when unset.
func (m *Meta) DisplayName() *text.Component {
	if m == nil {
		return nil
	}
	return m.displayName
}

// SetDisplayName sets or clears the display name.
func (m *Meta) SetDisplayName(name *text.Component) {
	if m == nil {
		return
	}
	m.displayName = name
}

// Lore returns the lore lines, or nil when unset.
func (m *Meta) Lore() []text.Component {
	if m == nil {
		return nil
	}
	return m.lore
}

// SetLore sets or clears the lore lines.
func (m *Meta) SetLore(lore []text.Component) {
	if m == nil {
		return
	}
	m.lore = lore
}

// AddEnchant adds an enchantment at the given level, replacing any existing
// level for the same enchantment.
func (m *Meta) AddEnchant(enchant Enchantment, level int) {
	if m == nil {
		return
	}
	m.enchants[enchant] = level
}

// RemoveEnchant removes an enchantment; absent enchantments are a no-op.
func (m *Meta) RemoveEnchant(enchant Enchantment) {
	if m == nil {
		return
	}
	delete(m.enchants, enchant)
}

// EnchantLevel returns the level of an enchantment, 0 when absent.
func (m *Meta) EnchantLevel(enchant Enchantment) int {
	if m == nil {
		return 0
	}
	return m.enchants[enchant]
}

// Enchants returns a copy of the enchantment map.
func (m *Meta) Enchants() map[Enchantment]int {
	if m == nil {
		return nil
	}
	out := make(map[Enchantment]int, len(m.enchants))
	for k, v := range m.enchants {
		out[k] = v
	}
	return out
}

// AddFlag adds a tooltip flag.
func (m *Meta) AddFlag(flag Flag) {
	if m == nil {
		return
	}
	m.flags[flag] = struct{}{}
}

// RemoveFlag removes a tooltip flag.
func (m *Meta) RemoveFlag(flag Flag) {
	if m == nil {
		return
	}
	delete(m.flags, flag)
}

// HasFlag reports whether a tooltip flag is set.
func (m *Meta) HasFlag(flag Flag) bool {
	if m == nil {
		return false
	}
	_, ok := m.flags[flag]
	return ok
}

// Flags returns the set flags in unspecified order.
func (m *Meta) Flags() []Flag {
	if m == nil {
		return nil
	}
	out := make([]Flag, 0, len(m.flags))
	for f := range m.flags {
		out = append(out, f)
	}
	return out
}

// CustomModelData returns the model variant tag, or nil when unset.
func (m *Meta) CustomModelData() *int {
	if m == nil {
		return nil
	}
	return m.modelData
}

// SetCustomModelData sets or clears the model variant tag.
func (m *Meta) SetCustomModelData(data *int) {
	if m == nil {
		return
	}
	m.modelData = data
}

// Color returns the dye color, or nil when unset.
func (m *Meta) Color() *Color {
	if m == nil {
		return nil
	}
	return m.color
}

// SetColor sets or clears the dye color.
func (m *Meta) SetColor(color *Color) {
	if m == nil {
		return
	}
	m.color = color
}

// SkullOwner returns the skull owner name, empty when unset.
func (m *Meta) SkullOwner() string {
	if m == nil {
		return ""
	}
	return m.skullOwner
}

// SetSkullOwner sets the skull owner name and drops any texture profile.
func (m *Meta) SetSkullOwner(name string) {
	if m == nil {
		return
	}
	m.skullOwner = name
	m.skullProfile = nil
}

// SkullProfile returns the resolved texture profile, or nil when unset.
func (m *Meta) SkullProfile() *profile.Profile {
	if m == nil {
		return nil
	}
	return m.skullProfile
}

// SetSkullProfile sets the texture profile and drops any owner name.
func (m *Meta) SetSkullProfile(p *profile.Profile) {
	if m == nil {
		return
	}
	m.skullProfile = p
	m.skullOwner = ""
}

// SetTag attaches a free-form tag to the item.
func (m *Meta) SetTag(key, value string) {
	if m == nil {
		return
	}
	m.tags[key] = value
}

// Tag returns the value of a tag and whether it is present.
func (m *Meta) Tag(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.tags[key]
	return v, ok
}

// RemoveTag removes a tag; absent keys are a no-op.
func (m *Meta) RemoveTag(key string) {
	if m == nil {
		return
	}
	delete(m.tags, key)
}

// AddAttribute appends a modifier for the given attribute.
func (m *Meta) AddAttribute(attribute Attribute, modifier AttributeModifier) {
	if m == nil {
		return
	}
	m.attributeMods[attribute] = append(m.attributeMods[attribute], modifier)
}

// RemoveAttribute drops every modifier of the given attribute.
func (m *Meta) RemoveAttribute(attribute Attribute) {
	if m == nil {
		return
	}
	delete(m.attributeMods, attribute)
}

// Attributes returns a copy of the attribute modifier multimap.
func (m *Meta) Attributes() map[Attribute][]AttributeModifier {
	if m == nil {
		return nil
	}
	out := make(map[Attribute][]AttributeModifier, len(m.attributeMods))
	for attr, mods := range m.attributeMods {
		out[attr] = append([]AttributeModifier(nil), mods...)
	}
	return out
}

func (m *Meta) clone() *Meta {
	clone := newMeta()
	if m.displayName != nil {
		name := *m.displayName
		clone.displayName = &name
	}
	clone.lore = text.CloneLore(m.lore)
	for k, v := range m.enchants {
		clone.enchants[k] = v
	}
	for f := range m.flags {
		clone.flags[f] = struct{}{}
	}
	if m.modelData != nil {
		data := *m.modelData
		clone.modelData = &data
	}
	if m.color != nil {
		color := *m.color
		clone.color = &color
	}
	clone.skullOwner = m.skullOwner
	clone.skullProfile = m.skullProfile
	for k, v := range m.tags {
		clone.tags[k] = v
	}
	for attr, mods := range m.attributeMods {
		clone.attributeMods[attr] = append([]AttributeModifier(nil), mods...)
	}
	return clone
}
