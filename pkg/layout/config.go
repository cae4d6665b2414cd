package layout

import "image/color"

// Config is the constant surface handed to layout. All lengths are
// device-independent pixels; LineHeight is a multiple of the font size.
type Config struct {
	BaseFontSize  float64
	LineHeight    float64
	MarkerIndent  float64 // width of the list marker gutter, one unit per nesting level
	ListMargin    float64 // above and below ul/ol
	ListItemGap   float64 // between list items
	RuleThickness float64
	RuleMargin    float64 // above and below hr

	TextColor    color.RGBA
	LinkColor    color.RGBA
	MarkerColor  color.RGBA
	RuleColor    color.RGBA
	H1Background color.RGBA
	H1Border     color.RGBA
	H2Border     color.RGBA
}

func DefaultConfig() Config {
	return Config{
		BaseFontSize:  16,
		LineHeight:    1.4,
		MarkerIndent:  24,
		ListMargin:    8,
		ListItemGap:   4,
		RuleThickness: 1,
		RuleMargin:    8,

		TextColor:    rgb(0x000000),
		LinkColor:    rgb(0x0000EE),
		MarkerColor:  rgb(0x555555),
		RuleColor:    rgb(0xAAAAAA),
		H1Background: rgb(0xF6F8FA),
		H1Border:     rgb(0xD1D9E0),
		H2Border:     rgb(0xE8E8E8),
	}
}

// rgb builds an opaque color from 0xRRGGBB.
func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
