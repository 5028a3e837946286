// Package render draws object lists onto a tcell screen in z-order
package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/scenery/object"
)

// Renderer paints objects back-to-front so higher z-orders overwrite lower ones
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
	colors map[string]tcell.Color
}

// New creates a renderer for an initialized screen
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault,
		colors: make(map[string]tcell.Color),
	}
}

// SetBaseStyle sets the style used for clearing and for objects without a color
func (r *Renderer) SetBaseStyle(style tcell.Style) {
	r.base = style
}

// Draw clears the screen, paints every object in l and shows the frame
// The caller's list order is left untouched
func (r *Renderer) Draw(l object.List) error {
	ordered := slices.Clone(l)
	if err := ordered.SortByZOrder(); err != nil {
		return err
	}

	r.screen.SetStyle(r.base)
	r.screen.Clear()

	width, height := r.screen.Size()
	for _, h := range ordered {
		o, _ := h.Object()
		x, y := o.Position()
		if x < 0 || y < 0 || x >= width || y >= height {
			continue
		}
		r.screen.SetContent(x, y, o.Glyph(), nil, r.styleFor(o))
	}

	r.screen.Show()
	return nil
}

func (r *Renderer) styleFor(o *object.Object) tcell.Style {
	name := o.Color()
	if name == "" {
		return r.base
	}
	c, ok := r.colors[name]
	if !ok {
		c = tcell.GetColor(name)
		r.colors[name] = c
	}
	return r.base.Foreground(c)
}

// TopAt returns the highest z-order object positioned at (x, y), nil if none
// This is the object Draw leaves visible on that cell
func TopAt(l object.List, x, y int) (*object.Handle, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	var hits object.List
	for _, h := range l {
		o, _ := h.Object()
		if ox, oy := o.Position(); ox == x && oy == y {
			hits = append(hits, h)
		}
	}
	return hits.Top()
}
