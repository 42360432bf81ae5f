// Package menu turns JSON menu definitions into live GUI layers: buttons
// bound to slots with priorities, legacy-formatted names and lore, skull
// textures and per-button behavior.
package menu

// MenuDef is the JSON definition of one menu.
type MenuDef struct {
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`

	Title string `json:"title" validate:"required"`
	Size  int    `json:"size,omitempty" validate:"omitempty,min=9,max=54"`

	// AllowTake lets viewers take unmarked items out of the menu.
	AllowTake bool `json:"allow_take,omitempty"`

	// UpdatePeriodTicks drives the auto-update loop when positive.
	UpdatePeriodTicks int64 `json:"update_period_ticks,omitempty" validate:"omitempty,min=1"`

	Buttons []ButtonDef `json:"buttons" validate:"required,min=1,dive"`
}

// ButtonDef is the JSON definition of one button. The material is either a
// plain material name or "basehead-<base64>" for a textured skull.
type ButtonDef struct {
	Key      string `json:"key" validate:"required"`
	Material string `json:"material" validate:"required"`
	Amount   int    `json:"amount,omitempty" validate:"omitempty,min=1,max=64"`

	Name string   `json:"name,omitempty"`
	Lore []string `json:"lore,omitempty"`

	Slots    []int `json:"slots" validate:"required,min=1,dive,min=0"`
	Priority int   `json:"priority,omitempty"`

	Update    bool  `json:"update,omitempty"`
	Marker    *bool `json:"marker,omitempty"` // nil means marked
	Enchanted bool  `json:"enchanted,omitempty"`

	CustomModelData *int     `json:"custom_model_data,omitempty"`
	Flags           []string `json:"flags,omitempty"`
}

// Marked resolves the optional marker field; buttons are marked unless the
// definition opts out.
func (b *ButtonDef) Marked() bool {
	return b.Marker == nil || *b.Marker
}

// StackAmount resolves the optional amount field.
func (b *ButtonDef) StackAmount() int {
	if b.Amount < 1 {
		return DefaultButtonAmount
	}
	return b.Amount
}
