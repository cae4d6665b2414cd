package layout

import (
	"strconv"

	"radon/pkg/html"
)

// layoutList handles ul and ol. Entering a list adds one indent unit;
// each direct li child gets a marker in the gutter left of its content.
// The ordered-list counter lives on this call's frame, so it can never
// leak into sibling or parent list scopes.
func (e *Engine) layoutList(n *html.Node, style Style, depth int, c *cursor) {
	c.y += e.config.ListMargin
	depth++
	ordered := n.TagName == "ol"
	counter := 1

	for _, child := range n.Children {
		// Anything that is not an li contributes nothing to a list.
		if child.Type != html.ElementNode || child.TagName != "li" {
			continue
		}
		var glyph string
		if ordered {
			glyph = strconv.Itoa(counter) + "."
			counter++
		} else {
			glyph = markerGlyph(depth)
		}
		e.layoutListItem(child, glyph, style, depth, c)
	}

	c.y += e.config.ListMargin
}

func (e *Engine) layoutListItem(n *html.Node, glyph string, style Style, depth int, c *cursor) {
	top := c.y
	h := e.lineHeight(style.Size)

	// Marker sits in the gutter to the left of the item's content.
	c.emit(Box{
		X:      e.indent(depth) - e.config.MarkerIndent,
		Y:      top,
		Width:  e.config.MarkerIndent,
		Height: h,
		Paint: Paint{
			Kind:     PaintMarker,
			Text:     glyph,
			FontSize: style.Size,
			Bold:     style.Bold,
			Italic:   style.Italic,
			Color:    e.config.MarkerColor,
		},
	})

	e.layoutChildren(n, style, depth, c)

	// An item advances by at least one line height even when empty, then
	// the inter-item gap.
	if c.y < top+h {
		c.y = top + h
	}
	c.y += e.config.ListItemGap
}

// markerGlyph is a pure function of nesting depth.
func markerGlyph(depth int) string {
	switch depth {
	case 1:
		return "•"
	case 2:
		return "◦"
	default:
		return "▪"
	}
}
