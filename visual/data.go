// Package visual holds the visual-metadata model behind a GUI item: the Data
// contract with its write-through stack materialization, the builder-oriented
// Wrapper, and the skull item cache.
package visual

import (
	"github.com/osse101/MenuForge_Go/item"
	"github.com/osse101/MenuForge_Go/text"
)

// Data is the canonical state of one rendered item. Every mutator leaves the
// materialized stack consistent with the newly set value before returning;
// the single exception is SetSkullTexture, whose profile application is
// asynchronous (see StackData).
//
// Display name and lore exist in two forms, raw legacy string and rich
// component. Whichever was set last is canonical; reading the other form
// derives it lazily and caches the result.
type Data interface {
	SetMaterial(material item.Material)
	Material() item.Material
	SetAmount(amount int)
	Amount() int

	SetDisplayName(name *text.Component)
	SetRawDisplayName(name string)
	DisplayName() *text.Component
	RawDisplayName() string

	SetLore(lore []text.Component)
	SetRawLore(lore []string)
	Lore() []text.Component
	RawLore() []string

	AddEnchant(enchant item.Enchantment, level int)
	RemoveEnchant(enchant item.Enchantment)
	RemoveEnchants()
	EnchantLevel(enchant item.Enchantment) int
	Enchants() map[item.Enchantment]int

	AddFlag(flag item.Flag)
	AddFlags(flags []item.Flag)
	RemoveFlag(flag item.Flag)
	HasFlag(flag item.Flag) bool
	Flags() []item.Flag

	SetCustomModelData(data *int)
	CustomModelData() *int

	SetColor(color *item.Color)
	Color() *item.Color

	SetSkullOwner(playerName string)
	SkullOwner() string
	SetSkullTexture(base64 string)
	SkullTexture() string
	HasCustomSkullTexture() bool

	AddAttribute(attribute item.Attribute, modifier item.AttributeModifier)
	RemoveAttribute(attribute item.Attribute)
	Attributes() map[item.Attribute][]item.AttributeModifier

	// Build returns the materialized stack. The returned stack is the live
	// internal representation, not a copy.
	Build() *item.Stack

	Clone() Data
}
