package overlay

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// inputCatcher wraps the overlay content and reports clicks and pointer
// movement so any mouse activity dismisses the overlay. Keyboard input is
// handled at the canvas level.
type inputCatcher struct {
	widget.BaseWidget
	content fyne.CanvasObject
	onInput func()
}

var _ fyne.Tappable = (*inputCatcher)(nil)
var _ desktop.Hoverable = (*inputCatcher)(nil)

func newInputCatcher(content fyne.CanvasObject, onInput func()) *inputCatcher {
	c := &inputCatcher{content: content, onInput: onInput}
	c.ExtendBaseWidget(c)
	return c
}

func (c *inputCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

func (c *inputCatcher) Tapped(*fyne.PointEvent) { c.onInput() }

func (c *inputCatcher) MouseIn(*desktop.MouseEvent) {}

// MouseMoved fires on pointer motion over the window. The window covers the
// whole screen, so this is every pointer motion.
func (c *inputCatcher) MouseMoved(*desktop.MouseEvent) { c.onInput() }

func (c *inputCatcher) MouseOut() {}
