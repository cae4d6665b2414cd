// Package page glues the pipeline together: parse, lay out at the
// viewport width, paint. It is the one place outside of tests where the
// stages meet, so the cmd binaries stay thin.
package page

import (
	"image"

	"radon/pkg/html"
	"radon/pkg/images"
	"radon/pkg/layout"
	"radon/pkg/render"
	"radon/pkg/text"
)

// Renderer renders whole HTML documents into pixel buffers. The zero
// value is not usable; construct with NewRenderer.
type Renderer struct {
	Fonts   text.FontConfig
	Images  *images.Loader
	Config  layout.Config
	Padding float64
}

// NewRenderer builds a page renderer that resolves relative image
// sources against baseDir, normally the document's directory.
func NewRenderer(baseDir string) *Renderer {
	return &Renderer{
		Fonts:   text.DefaultFontConfig(),
		Images:  images.NewLoader(baseDir),
		Config:  layout.DefaultConfig(),
		Padding: render.DefaultPagePadding,
	}
}

// Layout parses htmlContent and lays it out for a viewport of the given
// width, returning the box list and total content height. The content
// width handed to layout is the viewport width minus both gutters.
func (r *Renderer) Layout(htmlContent string, viewportWidth float64) ([]layout.Box, float64) {
	doc := html.Parse(htmlContent)

	contentWidth := viewportWidth - 2*r.Padding
	if contentWidth < 0 {
		contentWidth = 0
	}
	engine := layout.NewEngine(contentWidth)
	engine.SetConfig(r.Config)
	engine.SetMeasurer(text.NewMeasurer(r.Fonts))
	engine.SetImages(r.Images)
	return engine.Layout(doc)
}

// Render parses htmlContent, lays it out for the target's width, and
// paints the first viewport-sized slice onto target.
func (r *Renderer) Render(htmlContent string, target *image.RGBA) {
	bounds := target.Bounds()
	boxes, _ := r.Layout(htmlContent, float64(bounds.Dx()))

	renderer := render.NewRendererForImage(target)
	renderer.SetFonts(r.Fonts)
	renderer.SetImages(r.Images)
	renderer.SetPagePadding(r.Padding)
	renderer.Render(boxes)
}

// RenderPage lays htmlContent out for the given viewport width and
// paints the whole document into one image tall enough to hold it; the
// window viewer scrolls that image. Also returns the content height.
func (r *Renderer) RenderPage(htmlContent string, width int) (*image.RGBA, float64) {
	if width < 1 {
		width = 1
	}
	boxes, total := r.Layout(htmlContent, float64(width))

	height := int(total+2*r.Padding+0.5) + 1
	if height < 1 {
		height = 1
	}
	target := image.NewRGBA(image.Rect(0, 0, width, height))

	renderer := render.NewRendererForImage(target)
	renderer.SetFonts(r.Fonts)
	renderer.SetImages(r.Images)
	renderer.SetPagePadding(r.Padding)
	renderer.Render(boxes)
	return target, total
}
