// Package theme defines the overlay color palettes and the fyne theme used
// by the settings window.
package theme

import (
	"image/color"
)

// Palette holds the colors for one overlay theme.
type Palette struct {
	Name          string
	Background    color.NRGBA
	Text          color.NRGBA
	Muted         color.NRGBA // secondary text (date line)
	Accent        color.NRGBA
	GradientStart color.NRGBA
	GradientEnd   color.NRGBA
}

var palettes = map[string]Palette{
	"dark": {
		Name:          "dark",
		Background:    color.NRGBA{R: 18, G: 18, B: 18, A: 255},
		Text:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Muted:         color.NRGBA{R: 238, G: 238, B: 238, A: 255},
		Accent:        color.NRGBA{R: 0, G: 150, B: 255, A: 255},
		GradientStart: color.NRGBA{R: 25, G: 25, B: 35, A: 255},
		GradientEnd:   color.NRGBA{R: 15, G: 15, B: 25, A: 255},
	},
	"light": {
		Name:          "light",
		Background:    color.NRGBA{R: 245, G: 245, B: 245, A: 255},
		Text:          color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		Muted:         color.NRGBA{R: 60, G: 60, B: 60, A: 255},
		Accent:        color.NRGBA{R: 0, G: 120, B: 215, A: 255},
		GradientStart: color.NRGBA{R: 250, G: 250, B: 255, A: 255},
		GradientEnd:   color.NRGBA{R: 240, G: 240, B: 250, A: 255},
	},
	"blue": {
		Name:          "blue",
		Background:    color.NRGBA{R: 15, G: 25, B: 45, A: 255},
		Text:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Muted:         color.NRGBA{R: 179, G: 230, B: 255, A: 255},
		Accent:        color.NRGBA{R: 0, G: 200, B: 255, A: 255},
		GradientStart: color.NRGBA{R: 20, G: 35, B: 60, A: 255},
		GradientEnd:   color.NRGBA{R: 10, G: 20, B: 40, A: 255},
	},
	"green": {
		Name:          "green",
		Background:    color.NRGBA{R: 20, G: 40, B: 20, A: 255},
		Text:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Muted:         color.NRGBA{R: 220, G: 245, B: 220, A: 255},
		Accent:        color.NRGBA{R: 0, G: 255, B: 150, A: 255},
		GradientStart: color.NRGBA{R: 25, G: 50, B: 25, A: 255},
		GradientEnd:   color.NRGBA{R: 15, G: 30, B: 15, A: 255},
	},
	"purple": {
		Name:          "purple",
		Background:    color.NRGBA{R: 40, G: 20, B: 50, A: 255},
		Text:          color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Muted:         color.NRGBA{R: 235, G: 220, B: 245, A: 255},
		Accent:        color.NRGBA{R: 200, G: 100, B: 255, A: 255},
		GradientStart: color.NRGBA{R: 50, G: 25, B: 65, A: 255},
		GradientEnd:   color.NRGBA{R: 30, G: 15, B: 40, A: 255},
	},
}

// Get returns the palette for the given theme name, falling back to dark
// for unknown names.
func Get(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["dark"]
}

// Names returns the available theme names in menu order.
func Names() []string {
	return []string{"dark", "light", "blue", "green", "purple"}
}
