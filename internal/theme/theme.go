package theme

import (
	"image/color"
)

// Theme defines the colors used by the selection overlay. Mask colors carry
// their opacity in the alpha channel; the painter composites them over the
// screenshot as-is.
type Theme struct {
	Name string

	// Overlay
	Mask     color.RGBA // dim outside the active selection (~50% black)
	IdleMask color.RGBA // full-frame hint shown before any drag
	Border   color.RGBA // selection outline stroke

	// Action menu
	MenuBackground color.RGBA
	MenuHover      color.RGBA
	MenuText       color.RGBA
	MenuBorder     color.RGBA

	// Transient status message
	MessageBackground color.RGBA
	MessageText       color.RGBA
}

// Default returns the hardcoded default theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Mask:              color.RGBA{0, 0, 0, 128},
		IdleMask:          color.RGBA{0, 0, 0, 72},
		Border:            color.RGBA{255, 255, 255, 255},
		MenuBackground:    color.RGBA{240, 240, 240, 255},
		MenuHover:         color.RGBA{200, 200, 200, 255},
		MenuText:          color.RGBA{0, 0, 0, 255},
		MenuBorder:        color.RGBA{120, 120, 120, 255},
		MessageBackground: color.RGBA{220, 220, 220, 255},
		MessageText:       color.RGBA{0, 0, 0, 255},
	}
}
