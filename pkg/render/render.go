// Package render paints scroll frames for debugging and regression
// checks: the whole document as a vertical strip, the container, the
// sidebar at its applied position, and the viewport window.
package render

import (
	"image"

	"github.com/fogleman/gg"

	"stickybar/pkg/affix"
	"stickybar/pkg/measure"
	"stickybar/pkg/sticky"
)

// Frame is one paintable moment of a scroll session.
type Frame struct {
	Viewport       measure.Viewport
	Container      measure.Rect
	Sidebar        measure.Rect // flow rect, before any affixing
	Mode           affix.Mode
	TranslateY     float64
	TopSpacing     float64
	BottomSpacing  float64
	DocumentHeight float64
}

// Capture assembles a frame from a bound sidebar and its measurer.
func Capture(s *sticky.Sidebar, m measure.Measurer, topSpacing, bottomSpacing, documentHeight float64) Frame {
	side, _ := m.Rect(s.Node())
	cont, _ := m.Rect(s.Container())
	return Frame{
		Viewport:       m.Viewport(),
		Container:      cont,
		Sidebar:        side,
		Mode:           s.Mode(),
		TranslateY:     s.TranslateY(),
		TopSpacing:     topSpacing,
		BottomSpacing:  bottomSpacing,
		DocumentHeight: documentHeight,
	}
}

// SidebarTop returns the document-relative top edge the applied mode puts
// the sidebar at. This is the painter's reading of the resolved styles:
// fixed modes pin against the viewport, translated modes offset within
// the container.
func (f Frame) SidebarTop() float64 {
	switch f.Mode {
	case affix.ViewportTop:
		return f.Viewport.Top + f.TopSpacing
	case affix.ViewportBottom:
		return f.Viewport.Top + f.Viewport.Height - f.BottomSpacing - f.Sidebar.Height
	case affix.ContainerBottom, affix.ViewportUnbottom:
		return f.Container.Top + f.TranslateY
	}
	return f.Sidebar.Top
}

// Renderer paints frames at a fixed output size, scaling the document
// strip to fit.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Render paints one frame.
func (r *Renderer) Render(f Frame) image.Image {
	ctx := gg.NewContext(r.width, r.height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	scale := 1.0
	if f.DocumentHeight > 0 && f.DocumentHeight > float64(r.height) {
		scale = float64(r.height) / f.DocumentHeight
	}
	sx := func(v float64) float64 { return v * scale }

	// Document strip.
	ctx.SetRGB(0.93, 0.93, 0.93)
	ctx.DrawRectangle(0, 0, float64(r.width), sx(f.DocumentHeight))
	ctx.Fill()

	// Container.
	ctx.SetRGB(0.75, 0.75, 0.75)
	ctx.DrawRectangle(sx(f.Container.Left), sx(f.Container.Top),
		float64(r.width)*0.9, sx(f.Container.Height))
	ctx.Fill()

	// Sidebar at its applied position.
	ctx.SetRGB(0.20, 0.45, 0.85)
	ctx.DrawRectangle(sx(f.Sidebar.Left), sx(f.SidebarTop()),
		sx(f.Sidebar.Width), sx(f.Sidebar.Height))
	ctx.Fill()

	// Viewport window.
	ctx.SetRGB(0.85, 0.20, 0.20)
	ctx.SetLineWidth(2)
	ctx.DrawRectangle(0, sx(f.Viewport.Top), float64(r.width)-1, sx(f.Viewport.Height))
	ctx.Stroke()

	return ctx.Image()
}

// SavePNG renders a frame straight to a file.
func (r *Renderer) SavePNG(path string, f Frame) error {
	return gg.SavePNG(path, r.Render(f))
}
