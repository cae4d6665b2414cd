// Package layout turns a document tree into a flat, ordered list of
// positioned boxes. The model is block-only: every text run occupies one
// line box, containers stack their children vertically, and a single
// top-down traversal with a monotonic y cursor decides every position.
// Margins are plain additive advances with no collapsing.
//
// Coordinates are device-independent pixels. x=0 is the left edge of the
// content area and y=0 its top; any page gutter around the content is the
// renderer's business, not layout's.
package layout

import (
	"image/color"
	"strings"

	"radon/pkg/html"
	"radon/pkg/images"
)

// Measurer reports the rendered extent of a text run in the current face.
type Measurer interface {
	Measure(text string, fontSize float64, bold, italic bool) (width, height float64)
}

// ImageSource supplies natural pixel dimensions for img elements. A
// returned error degrades the image to a zero-size box.
type ImageSource interface {
	Dimensions(src string) (width, height int, err error)
}

// Style is the inherited text state. It is passed down the traversal by
// value, so a child's changes can never leak back to its parent.
type Style struct {
	Size      float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     color.RGBA
}

// Engine lays out one document tree at a fixed content width. An Engine
// holds no per-document state: Layout may be called any number of times
// and the same tree always produces the same boxes.
type Engine struct {
	contentWidth float64
	config       Config
	measurer     Measurer
	images       ImageSource
}

func NewEngine(contentWidth float64) *Engine {
	return &Engine{
		contentWidth: contentWidth,
		config:       DefaultConfig(),
		measurer:     estimator{},
		images:       images.NewLoader("."),
	}
}

// SetConfig replaces the constant surface used by subsequent layouts.
func (e *Engine) SetConfig(cfg Config) {
	e.config = cfg
}

// SetMeasurer sets the text measurer used for box widths.
func (e *Engine) SetMeasurer(m Measurer) {
	e.measurer = m
}

// SetImages sets the source asked for image dimensions.
func (e *Engine) SetImages(src ImageSource) {
	e.images = src
}

// Layout walks the tree once and returns the ordered box list plus the
// total content height, which the caller needs for scroll clamping.
func (e *Engine) Layout(doc *html.Document) ([]Box, float64) {
	c := &cursor{}
	style := Style{Size: e.config.BaseFontSize, Color: e.config.TextColor}
	e.layoutNode(doc.Root, style, 0, c)
	return c.boxes, c.y
}

// cursor is the mutable traversal state: the write position and the boxes
// emitted so far. It exists only for the duration of one Layout call.
type cursor struct {
	y     float64
	boxes []Box
}

func (c *cursor) emit(b Box) {
	c.boxes = append(c.boxes, b)
}

func (e *Engine) layoutNode(n *html.Node, style Style, depth int, c *cursor) {
	if n.Type == html.TextNode {
		e.layoutText(n.Text, style, depth, c)
		return
	}

	switch n.TagName {
	case "h1", "h2", "h3":
		e.layoutHeading(n, style, depth, c)

	case "p":
		e.layoutChildren(n, style, depth, c)
		c.y += 16

	case "strong":
		style.Bold = true
		e.layoutChildren(n, style, depth, c)

	case "em":
		style.Italic = true
		e.layoutChildren(n, style, depth, c)

	case "a":
		style.Color = e.config.LinkColor
		style.Underline = true
		e.layoutChildren(n, style, depth, c)

	case "ul", "ol":
		e.layoutList(n, style, depth, c)

	case "li":
		// An li outside a list scope has no marker; its content still
		// lays out.
		e.layoutChildren(n, style, depth, c)

	case "br":
		c.y += e.lineHeight(style.Size)

	case "hr":
		e.layoutRule(c)

	case "img":
		e.layoutImage(n, depth, c)

	case "html", "body", "div", "section", "article", "main", "header", "footer", "span", "document":
		e.layoutChildren(n, style, depth, c)

	default:
		// Unknown tags are transparent: children in place, style inherited.
		e.layoutChildren(n, style, depth, c)
	}
}

func (e *Engine) layoutChildren(n *html.Node, style Style, depth int, c *cursor) {
	for _, child := range n.Children {
		e.layoutNode(child, style, depth, c)
	}
}

// layoutText emits exactly one box per text node. There is no wrapping,
// so the box width is the measured run width and may exceed the content
// width.
func (e *Engine) layoutText(text string, style Style, depth int, c *cursor) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	w, _ := e.measurer.Measure(trimmed, style.Size, style.Bold, style.Italic)
	h := e.lineHeight(style.Size)
	c.emit(Box{
		X:      e.indent(depth),
		Y:      c.y,
		Width:  w,
		Height: h,
		Paint: Paint{
			Kind:      PaintText,
			Text:      trimmed,
			FontSize:  style.Size,
			Bold:      style.Bold,
			Italic:    style.Italic,
			Underline: style.Underline,
			Color:     style.Color,
		},
	})
	c.y += h
}

func (e *Engine) layoutHeading(n *html.Node, style Style, depth int, c *cursor) {
	var size, marginTop, marginBottom float64
	switch n.TagName {
	case "h1":
		size, marginTop, marginBottom = 32, 24, 16
	case "h2":
		size, marginTop, marginBottom = 24, 20, 12
	case "h3":
		size, marginTop, marginBottom = 20, 16, 8
	}
	c.y += marginTop

	// h1 gets a tinted band behind its line, emitted before the text so
	// it paints underneath.
	if n.TagName == "h1" {
		c.emit(Box{
			X:      0,
			Y:      c.y - 6,
			Width:  e.contentWidth,
			Height: e.lineHeight(size) + 12,
			Paint:  Paint{Kind: PaintRect, Color: e.config.H1Background},
		})
	}

	style.Size = size
	style.Bold = true
	e.layoutChildren(n, style, depth, c)

	// h1 and h2 close with a thin rule: 4px gap, 1px line.
	if n.TagName != "h3" {
		border := e.config.H1Border
		if n.TagName == "h2" {
			border = e.config.H2Border
		}
		c.y += 4
		c.emit(Box{
			X:      0,
			Y:      c.y,
			Width:  e.contentWidth,
			Height: 1,
			Paint:  Paint{Kind: PaintRect, Color: border},
		})
		c.y += 1
	}
	c.y += marginBottom
}

func (e *Engine) layoutRule(c *cursor) {
	c.y += e.config.RuleMargin
	c.emit(Box{
		X:      0,
		Y:      c.y,
		Width:  e.contentWidth,
		Height: e.config.RuleThickness,
		Paint:  Paint{Kind: PaintRect, Color: e.config.RuleColor},
	})
	c.y += e.config.RuleThickness + e.config.RuleMargin
}

// layoutImage places an img at its natural size, downscaled to the
// available width when too wide. Any failure to resolve the source
// degrades to a zero-size box; one bad asset never breaks the page.
func (e *Engine) layoutImage(n *html.Node, depth int, c *cursor) {
	x := e.indent(depth)
	src, ok := n.GetAttribute("src")
	if !ok || src == "" || e.images == nil {
		c.emit(Box{X: x, Y: c.y})
		return
	}
	nw, nh, err := e.images.Dimensions(src)
	if err != nil || nw <= 0 || nh <= 0 {
		c.emit(Box{X: x, Y: c.y})
		return
	}
	w, h := float64(nw), float64(nh)
	avail := e.contentWidth - x
	if w > avail && avail > 0 {
		scale := avail / w
		w *= scale
		h *= scale
	}
	c.emit(Box{
		X:      x,
		Y:      c.y,
		Width:  w,
		Height: h,
		Paint:  Paint{Kind: PaintImage, ImagePath: src},
	})
	c.y += h
}

func (e *Engine) lineHeight(fontSize float64) float64 {
	return fontSize * e.config.LineHeight
}

func (e *Engine) indent(depth int) float64 {
	return float64(depth) * e.config.MarkerIndent
}

// estimator is the measurement fallback used when no real font metrics
// are wired in. The numbers are rough but deterministic, which keeps
// layout a pure function in tests.
type estimator struct{}

func (estimator) Measure(text string, fontSize float64, bold, italic bool) (float64, float64) {
	return float64(len(text)) * fontSize * 0.6, fontSize * 1.2
}
