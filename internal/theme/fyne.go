package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// AppTheme is the fyne theme used by the settings window. It keeps the stock
// widget rendering and only overrides the brand colors and text sizes.
type AppTheme struct{}

func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNamePrimary:
		return color.NRGBA{R: 0x00, G: 0x96, B: 0xFF, A: 0xFF}
	case fynetheme.ColorNameButton:
		return color.NRGBA{R: 0x00, G: 0x96, B: 0xFF, A: 0xFF}
	case fynetheme.ColorNameSuccess:
		return color.NRGBA{R: 0x00, G: 0xFF, B: 0x96, A: 0xFF}
	case fynetheme.ColorNameError:
		return color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}
	default:
		return fynetheme.DefaultTheme().Color(name, variant)
	}
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case fynetheme.SizeNameText:
		return 13
	case fynetheme.SizeNameHeadingText:
		return 18
	default:
		return fynetheme.DefaultTheme().Size(name)
	}
}
