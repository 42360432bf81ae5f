// Package item models the renderable item objects a menu writes into
// inventory slots: a material, a stack amount and a metadata object carrying
// display name, lore, enchantments, flags, colors, skull profiles, free-form
// tags and attribute modifiers.
package item

import "github.com/google/uuid"

// Material identifies the base item type.
type Material string

// Materials commonly used by menu layouts. The set is open; any non-empty
// string is a valid material from this package's point of view.
const (
	MaterialAir                  Material = "air"
	MaterialStone                Material = "stone"
	MaterialPaper                Material = "paper"
	MaterialBarrier              Material = "barrier"
	MaterialChest                Material = "chest"
	MaterialEmerald              Material = "emerald"
	MaterialDiamondSword         Material = "diamond_sword"
	MaterialBook                 Material = "book"
	MaterialArrow                Material = "arrow"
	MaterialPlayerHead           Material = "player_head"
	MaterialLeatherHelmet        Material = "leather_helmet"
	MaterialLeatherChestplate    Material = "leather_chestplate"
	MaterialLeatherLeggings      Material = "leather_leggings"
	MaterialLeatherBoots         Material = "leather_boots"
	MaterialGrayStainedGlassPane Material = "gray_stained_glass_pane"
)

// Dyeable reports whether the material accepts a leather armor color.
func (m Material) Dyeable() bool {
	switch m {
	case MaterialLeatherHelmet, MaterialLeatherChestplate, MaterialLeatherLeggings, MaterialLeatherBoots:
		return true
	}
	return false
}

// Enchantment identifies an enchantment type.
type Enchantment string

// Enchantments referenced by menu code.
const (
	EnchantLure       Enchantment = "lure"
	EnchantSharpness  Enchantment = "sharpness"
	EnchantUnbreaking Enchantment = "unbreaking"
	EnchantProtection Enchantment = "protection"
)

// GlintEnchant is the dummy enchantment applied (together with
// FlagHideEnchants) to give an item the enchanted glow without gameplay
// meaning.
const GlintEnchant = EnchantLure

// Flag hides a section of item metadata from the tooltip.
type Flag string

// Tooltip flags.
const (
	FlagHideEnchants    Flag = "hide_enchants"
	FlagHideAttributes  Flag = "hide_attributes"
	FlagHideUnbreakable Flag = "hide_unbreakable"
	FlagHideDye         Flag = "hide_dye"
)

// Color is an RGB color applied to dyeable materials.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Attribute identifies an entity attribute an item can modify.
type Attribute string

// Attributes referenced by menu code.
const (
	AttributeAttackDamage  Attribute = "attack_damage"
	AttributeMovementSpeed Attribute = "movement_speed"
	AttributeArmor         Attribute = "armor"
	AttributeMaxHealth     Attribute = "max_health"
)

// ModifierOperation selects how an attribute modifier combines with the base
// value.
type ModifierOperation int

// Modifier operations.
const (
	OperationAdd ModifierOperation = iota
	OperationMultiplyBase
	OperationMultiplyTotal
)

// AttributeModifier is one modifier applied to an attribute. Removal is by
// attribute, never by ID, so callers do not need to track modifier IDs.
type AttributeModifier struct {
	ID        uuid.UUID
	Name      string
	Amount    float64
	Operation ModifierOperation
}
