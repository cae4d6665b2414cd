// Package render rasterizes a layout box list with fogleman/gg. The
// renderer owns everything layout is unaware of: the page gutter, the
// scroll offset, font files, and pixel decoding of images.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"radon/pkg/images"
	"radon/pkg/layout"
	"radon/pkg/text"
)

// DefaultPagePadding is the gutter between the canvas edge and the
// content area's x=0.
const DefaultPagePadding = 16.0

// Renderer paints one vertical slice of a box list into a pixel buffer.
type Renderer struct {
	context *gg.Context
	width   int
	height  int
	fonts   text.FontConfig
	images  *images.Loader
	scrollY float64
	padding float64
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		context: gg.NewContext(width, height),
		width:   width,
		height:  height,
		fonts:   text.DefaultFontConfig(),
		images:  images.NewLoader("."),
		padding: DefaultPagePadding,
	}
}

// NewRendererForImage paints into an existing RGBA buffer, so callers
// can embed the rendered page in an image they own.
func NewRendererForImage(target *image.RGBA) *Renderer {
	b := target.Bounds()
	return &Renderer{
		context: gg.NewContextForRGBA(target),
		width:   b.Dx(),
		height:  b.Dy(),
		fonts:   text.DefaultFontConfig(),
		images:  images.NewLoader("."),
		padding: DefaultPagePadding,
	}
}

// SetFonts sets the font files used to draw text and markers.
func (r *Renderer) SetFonts(fonts text.FontConfig) {
	r.fonts = fonts
}

// SetImages sets the loader that resolves image boxes to pixels. It
// should be the same loader layout measured with, so nothing decodes
// twice.
func (r *Renderer) SetImages(loader *images.Loader) {
	r.images = loader
}

// SetScroll sets the content y that appears at the top of the viewport.
// Clamping to the total content height is the caller's job.
func (r *Renderer) SetScroll(y float64) {
	r.scrollY = y
}

// SetPagePadding sets the gutter around the content area.
func (r *Renderer) SetPagePadding(p float64) {
	r.padding = p
}

// Render clears the canvas to white and paints every box that intersects
// the current viewport slice.
func (r *Renderer) Render(boxes []layout.Box) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	for _, box := range boxes {
		x := box.X + r.padding
		y := box.Y + r.padding - r.scrollY

		// Skip boxes fully outside the viewport.
		if y+box.Height < 0 || y > float64(r.height) {
			continue
		}
		r.drawBox(box, x, y)
	}
}

func (r *Renderer) drawBox(box layout.Box, x, y float64) {
	switch box.Paint.Kind {
	case layout.PaintText, layout.PaintMarker:
		r.drawText(box, x, y)
	case layout.PaintRect:
		r.drawRect(box, x, y)
	case layout.PaintImage:
		r.drawImage(box, x, y)
	case layout.PaintNone:
		// Zero-size placeholder, nothing to paint.
	}
}

func (r *Renderer) drawText(box layout.Box, x, y float64) {
	p := box.Paint
	if p.Text == "" {
		return
	}

	r.setColor(p.Color)

	fontPath := r.fonts.FontPath(p.Bold, p.Italic)
	if fontPath == "" {
		return
	}
	if err := r.context.LoadFontFace(fontPath, p.FontSize); err != nil {
		// If font loading fails, skip rendering
		return
	}

	// Add fontSize to Y for baseline alignment
	textY := y + p.FontSize
	r.context.DrawString(p.Text, x, textY)

	if p.Underline {
		textWidth, _ := r.context.MeasureString(p.Text)
		lineThickness := p.FontSize / 12.0
		if lineThickness < 1 {
			lineThickness = 1
		}
		r.context.SetLineWidth(lineThickness)
		underlineY := textY + p.FontSize*0.1
		r.context.DrawLine(x, underlineY, x+textWidth, underlineY)
		r.context.Stroke()
	}
}

func (r *Renderer) drawRect(box layout.Box, x, y float64) {
	if box.Width <= 0 || box.Height <= 0 {
		return
	}
	r.setColor(box.Paint.Color)
	r.context.DrawRectangle(x, y, box.Width, box.Height)
	r.context.Fill()
}

func (r *Renderer) drawImage(box layout.Box, x, y float64) {
	if box.Width <= 0 || box.Height <= 0 {
		return
	}

	img, err := r.images.LoadImage(box.Paint.ImagePath)
	if err != nil {
		r.drawBrokenImage(box, x, y)
		return
	}

	bounds := img.Bounds()
	imgWidth := float64(bounds.Dx())
	imgHeight := float64(bounds.Dy())
	if imgWidth <= 0 || imgHeight <= 0 {
		return
	}

	r.context.Push()
	r.context.Translate(x, y)
	r.context.Scale(box.Width/imgWidth, box.Height/imgHeight)
	r.context.DrawImage(img, 0, 0)
	r.context.Pop()
}

// drawBrokenImage paints a light gray placeholder with an X where an
// image box could not be resolved to pixels.
func (r *Renderer) drawBrokenImage(box layout.Box, x, y float64) {
	r.context.SetRGB(0.9, 0.9, 0.9)
	r.context.DrawRectangle(x, y, box.Width, box.Height)
	r.context.Fill()

	r.context.SetRGB(0.5, 0.5, 0.5)
	r.context.SetLineWidth(2)
	r.context.DrawLine(x, y, x+box.Width, y+box.Height)
	r.context.DrawLine(x+box.Width, y, x, y+box.Height)
	r.context.Stroke()
}

func (r *Renderer) setColor(c color.RGBA) {
	r.context.SetRGB(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0)
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

// Image returns the rendered frame for embedding (the window viewer
// hands it to its canvas).
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}
