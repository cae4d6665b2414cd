package layout

import "image/color"

// PaintKind selects what a box paints. The zero value paints nothing;
// a failed image resolves to it.
type PaintKind int

const (
	PaintNone PaintKind = iota
	PaintText
	PaintRect
	PaintMarker
	PaintImage
)

// Paint is the draw command attached to a box. One struct serves every
// kind; only the fields belonging to the box's kind are meaningful.
type Paint struct {
	Kind      PaintKind
	Text      string // PaintText: the run; PaintMarker: the glyph
	FontSize  float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     color.RGBA
	ImagePath string // PaintImage: raw src attribute value
}

// Box is one positioned, sized, paintable unit. Layout emits boxes in
// document order with non-decreasing Y; the list is the whole contract
// between layout and the renderer.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Paint  Paint
}
