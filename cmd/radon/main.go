package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"radon/pkg/html"
	"radon/pkg/images"
	"radon/pkg/layout"
	"radon/pkg/render"
	"radon/pkg/text"
)

func main() {
	width := flag.Int("w", 800, "page width in pixels")
	output := flag.String("o", "output.png", "output PNG path")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-w width] [-o output.png] <input.html>\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	content, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	doc := html.Parse(string(content))

	// Images are resolved against the document's own directory.
	loader := images.NewLoader(filepath.Dir(inputFile))
	fonts := text.DefaultFontConfig()

	contentWidth := float64(*width) - 2*render.DefaultPagePadding
	if contentWidth < 0 {
		contentWidth = 0
	}
	engine := layout.NewEngine(contentWidth)
	engine.SetMeasurer(text.NewMeasurer(fonts))
	engine.SetImages(loader)
	boxes, total := engine.Layout(doc)

	height := int(total+2*render.DefaultPagePadding+0.5) + 1
	renderer := render.NewRenderer(*width, height)
	renderer.SetFonts(fonts)
	renderer.SetImages(loader)
	renderer.Render(boxes)

	if err := renderer.SavePNG(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %s to %s\n", inputFile, *output)
	fmt.Printf("%d boxes, content height %.0fpx\n", len(boxes), total)
}
