package visual

import "github.com/osse101/MenuForge_Go/item"

// Adapt converts a builder-oriented Wrapper into the canonical Data model.
// Managed enchantments, the glint toggle, flags, skull texture and dye color
// all carry over; the resulting Data owns its own stack.
func Adapt(w *Wrapper) Data {
	data := NewStackData(w.Material(), w.Stack().Amount())

	data.SetDisplayName(w.DisplayName())
	data.SetLore(w.Lore())
	data.SetCustomModelData(w.CustomModelData())

	for _, entry := range w.Enchantments() {
		data.AddEnchant(entry.Enchant, entry.Level)
	}
	if w.Enchanted() {
		data.AddEnchant(item.GlintEnchant, 1)
	}

	if flags := w.Flags(); flags != nil {
		data.AddFlags(flags)
	}

	if skin := w.Base64Skin(); skin != "" {
		data.SetSkullTexture(skin)
	}

	if color := w.Color(); color != nil {
		data.SetColor(color)
	}

	return data
}
