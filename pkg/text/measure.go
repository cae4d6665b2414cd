// Package text provides font discovery and text measurement. Layout asks
// it how wide a run will paint; the renderer asks it which font file to
// load for a style. Measurement never fails: when no usable font exists
// it falls back to a rough deterministic estimate.
package text

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// FontConfig holds paths to font files used for text measurement and rendering.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

// fontCandidates lists, per face, places a usable font is commonly found.
// The project-local assets directory wins over system locations.
var fontCandidates = map[string][]string{
	"regular": {
		"./assets/font.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Verdana.ttf",
	},
	"bold": {
		"./assets/font-bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	},
	"italic": {
		"./assets/font-italic.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Italic.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Oblique.ttf",
		"/System/Library/Fonts/Supplemental/Arial Italic.ttf",
	},
	"bolditalic": {
		"./assets/font-bolditalic.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-BoldOblique.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-BoldItalic.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-BoldOblique.ttf",
		"/System/Library/Fonts/Supplemental/Arial Bold Italic.ttf",
	},
}

func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// DefaultFontConfig probes the usual font locations for each face. Faces
// with no usable file fall back to the regular face; a fully empty config
// means every measurement uses the estimate and every draw skips glyphs.
func DefaultFontConfig() FontConfig {
	fc := FontConfig{
		Regular:    firstExisting(fontCandidates["regular"]),
		Bold:       firstExisting(fontCandidates["bold"]),
		Italic:     firstExisting(fontCandidates["italic"]),
		BoldItalic: firstExisting(fontCandidates["bolditalic"]),
	}
	if fc.Bold == "" {
		fc.Bold = fc.Regular
	}
	if fc.Italic == "" {
		fc.Italic = fc.Regular
	}
	if fc.BoldItalic == "" {
		fc.BoldItalic = fc.Bold
	}
	return fc
}

// FontConfigFromDir builds a FontConfig from a directory laid out as
// font.ttf / font-bold.ttf / font-italic.ttf / font-bolditalic.ttf,
// falling back per face like DefaultFontConfig.
func FontConfigFromDir(dir string) FontConfig {
	pick := func(name string) string {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
		return ""
	}
	fc := FontConfig{
		Regular:    pick("font.ttf"),
		Bold:       pick("font-bold.ttf"),
		Italic:     pick("font-italic.ttf"),
		BoldItalic: pick("font-bolditalic.ttf"),
	}
	if fc.Bold == "" {
		fc.Bold = fc.Regular
	}
	if fc.Italic == "" {
		fc.Italic = fc.Regular
	}
	if fc.BoldItalic == "" {
		fc.BoldItalic = fc.Bold
	}
	return fc
}

// FontPath returns the font path for the given style combination.
func (fc FontConfig) FontPath(bold, italic bool) string {
	if bold && italic && fc.BoldItalic != "" {
		return fc.BoldItalic
	}
	if bold && fc.Bold != "" {
		return fc.Bold
	}
	if italic && fc.Italic != "" {
		return fc.Italic
	}
	return fc.Regular
}

// MeasureText measures the width and height of text with the given font size
func MeasureText(text string, fontSize float64, fontPath string) (width, height float64) {
	// Use a temporary context for measurement
	dc := gg.NewContext(1000, 1000)

	if fontPath == "" {
		return estimate(text, fontSize)
	}
	if err := dc.LoadFontFace(fontPath, fontSize); err != nil {
		// If font loading fails, return rough estimate
		return estimate(text, fontSize)
	}

	return dc.MeasureString(text)
}

func estimate(text string, fontSize float64) (width, height float64) {
	return float64(len(text)) * fontSize * 0.6, fontSize * 1.2
}

// Measurer measures text through a FontConfig. It satisfies the layout
// engine's measurement seam.
type Measurer struct {
	fonts FontConfig
}

func NewMeasurer(fonts FontConfig) *Measurer {
	return &Measurer{fonts: fonts}
}

func (m *Measurer) Measure(text string, fontSize float64, bold, italic bool) (width, height float64) {
	return MeasureText(text, fontSize, m.fonts.FontPath(bold, italic))
}
