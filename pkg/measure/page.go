package measure

import (
	"stickybar/pkg/html"
)

// TextLineHeight is the height a text node contributes to the flow.
const TextLineHeight = 20

// PageMeasurer measures DOM nodes with a minimal vertical block flow:
// every element is a full-width block stacked under its previous sibling,
// sized by its inline `height`/`width` styles or by its content. It owns
// the scroll position, standing in for a real rendering platform in the
// CLI, the demo, and tests.
type PageMeasurer struct {
	doc *html.Document

	viewportWidth  float64
	viewportHeight float64
	scrollTop      float64
	scrollLeft     float64

	rects map[*html.Node]Rect
}

func NewPageMeasurer(doc *html.Document, viewportWidth, viewportHeight float64) *PageMeasurer {
	return &PageMeasurer{
		doc:            doc,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

func (p *PageMeasurer) SetScroll(top, left float64) {
	p.scrollTop = top
	p.scrollLeft = left
}

func (p *PageMeasurer) SetViewportSize(width, height float64) {
	p.viewportWidth = width
	p.viewportHeight = height
}

func (p *PageMeasurer) Viewport() Viewport {
	return Viewport{
		Top:    p.scrollTop,
		Left:   p.scrollLeft,
		Width:  p.viewportWidth,
		Height: p.viewportHeight,
	}
}

func (p *PageMeasurer) Rect(n *html.Node) (Rect, bool) {
	p.reflow()
	r, ok := p.rects[n]
	return r, ok
}

// DocumentHeight returns the height of the whole flowed page.
func (p *PageMeasurer) DocumentHeight() float64 {
	p.reflow()
	var h float64
	for _, c := range p.doc.Root.Children {
		if r, ok := p.rects[c]; ok && r.Bottom() > h {
			h = r.Bottom()
		}
	}
	return h
}

// reflow recomputes every element rect. The flow is cheap enough to rerun
// per measurement; no dirty tracking.
func (p *PageMeasurer) reflow() {
	p.rects = make(map[*html.Node]Rect)
	y := 0.0
	for _, c := range p.doc.Root.Children {
		y += p.flowNode(c, 0, y, p.viewportWidth)
	}
}

// flowNode lays out one node at (x, y) within the given width and returns
// the vertical space it occupies.
func (p *PageMeasurer) flowNode(n *html.Node, x, y, width float64) float64 {
	if n.Type == html.TextNode {
		return TextLineHeight
	}

	style := n.Style()
	if w, ok := style.GetLength("width"); ok {
		width = w
	}

	childY := y
	for _, c := range n.Children {
		childY += p.flowNode(c, x, childY, width)
	}
	height := childY - y
	if h, ok := style.GetLength("height"); ok {
		height = h
	}

	p.rects[n] = Rect{Top: y, Left: x, Width: width, Height: height}
	return height
}
