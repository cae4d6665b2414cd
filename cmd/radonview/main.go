package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"radon/pkg/page"
)

func main() {
	width := flag.Int("w", 800, "page width in pixels")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-w width] <input.html>\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	content, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", inputFile, err)
		os.Exit(1)
	}

	renderer := page.NewRenderer(filepath.Dir(inputFile))
	img, _ := renderer.RenderPage(string(content), *width)

	a := app.New()
	w := a.NewWindow(inputFile)
	w.Resize(fyne.NewSize(float32(*width), 600))

	pageImage := canvas.NewImageFromImage(img)
	pageImage.FillMode = canvas.ImageFillOriginal
	bounds := img.Bounds()
	pageImage.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))

	w.SetContent(container.NewScroll(pageImage))
	w.ShowAndRun()
}
