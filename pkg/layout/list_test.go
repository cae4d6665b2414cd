package layout

import "testing"

func markerTexts(boxes []Box) []string {
	var glyphs []string
	for _, b := range boxes {
		if b.Paint.Kind == PaintMarker {
			glyphs = append(glyphs, b.Paint.Text)
		}
	}
	return glyphs
}

func TestList_NestedBullets(t *testing.T) {
	boxes, _ := layoutHTML(`<ul><li>A<ul><li>B</li></ul></li></ul>`)
	if len(boxes) != 4 {
		t.Fatalf("expected 2 markers and 2 text boxes, got %d", len(boxes))
	}
	cfg := DefaultConfig()

	outerMarker, outerText := boxes[0], boxes[1]
	innerMarker, innerText := boxes[2], boxes[3]

	if outerMarker.Paint.Kind != PaintMarker || outerMarker.Paint.Text != "•" {
		t.Errorf("outer item gets a bullet, got %+v", outerMarker.Paint)
	}
	if innerMarker.Paint.Text != "◦" {
		t.Errorf("nested item gets a hollow bullet, got %q", innerMarker.Paint.Text)
	}

	// The marker occupies the gutter immediately left of the item content.
	if outerMarker.X != 0 || outerMarker.Width != cfg.MarkerIndent {
		t.Errorf("outer marker gutter wrong: %+v", outerMarker)
	}
	if outerText.X != cfg.MarkerIndent {
		t.Errorf("outer content indents one unit, got x=%f", outerText.X)
	}
	if innerMarker.X != cfg.MarkerIndent || innerText.X != 2*cfg.MarkerIndent {
		t.Errorf("nested level shifts one more unit: marker x=%f text x=%f", innerMarker.X, innerText.X)
	}

	if outerMarker.Y != outerText.Y || innerMarker.Y != innerText.Y {
		t.Error("marker and first line share a baseline")
	}
	if outerMarker.Paint.Color != cfg.MarkerColor {
		t.Error("markers use the muted marker color")
	}
}

func TestList_OrderedMarkers(t *testing.T) {
	boxes, _ := layoutHTML(`<ol><li>First</li><li>Second</li></ol>`)
	glyphs := markerTexts(boxes)
	if len(glyphs) != 2 || glyphs[0] != "1." || glyphs[1] != "2." {
		t.Errorf("expected markers 1. and 2., got %v", glyphs)
	}
}

// Each list scope numbers independently; a nested list never disturbs its
// parent's count.
func TestList_NestedOrderedCounters(t *testing.T) {
	boxes, _ := layoutHTML(`<ol><li>a<ol><li>x</li></ol></li><li>b</li></ol>`)
	glyphs := markerTexts(boxes)
	want := []string{"1.", "1.", "2."}
	if len(glyphs) != len(want) {
		t.Fatalf("expected %d markers, got %v", len(want), glyphs)
	}
	for i := range want {
		if glyphs[i] != want[i] {
			t.Errorf("marker %d: expected %q, got %q", i, want[i], glyphs[i])
		}
	}
}

func TestList_SequentialListsRestartNumbering(t *testing.T) {
	boxes, _ := layoutHTML(`<ol><li>a</li></ol><ol><li>b</li></ol>`)
	glyphs := markerTexts(boxes)
	if len(glyphs) != 2 || glyphs[0] != "1." || glyphs[1] != "1." {
		t.Errorf("each list counts from 1, got %v", glyphs)
	}
}

func TestList_SkipsNonItems(t *testing.T) {
	boxes, _ := layoutHTML(`<ul>stray<li>A</li><p>not an item</p></ul>`)
	if len(boxes) != 2 {
		t.Fatalf("only li children contribute, got %d boxes", len(boxes))
	}
	if boxes[0].Paint.Kind != PaintMarker || boxes[1].Paint.Text != "A" {
		t.Error("expected exactly one marker and one text box")
	}
}

func TestList_EmptyItemStillAdvances(t *testing.T) {
	boxes, _ := layoutHTML(`<ul><li></li><li>B</li></ul>`)
	glyphs := markerTexts(boxes)
	if len(glyphs) != 2 {
		t.Fatalf("expected 2 markers, got %v", glyphs)
	}
	cfg := DefaultConfig()
	var markers []Box
	for _, b := range boxes {
		if b.Paint.Kind == PaintMarker {
			markers = append(markers, b)
		}
	}
	gap := markers[1].Y - markers[0].Y
	want := 16*cfg.LineHeight + cfg.ListItemGap
	if !near(gap, want) {
		t.Errorf("an empty item takes one line plus the gap (%f), got %f", want, gap)
	}
}

func TestList_MarkerInheritsStyle(t *testing.T) {
	boxes, _ := layoutHTML(`<strong><ul><li>x</li></ul></strong>`)
	var marker *Box
	for i := range boxes {
		if boxes[i].Paint.Kind == PaintMarker {
			marker = &boxes[i]
		}
	}
	if marker == nil {
		t.Fatal("expected a marker box")
	}
	if !marker.Paint.Bold {
		t.Error("marker weight follows the surrounding style")
	}
}

func TestList_ItemOutsideListHasNoMarker(t *testing.T) {
	boxes, _ := layoutHTML(`<li>loose</li>`)
	if len(boxes) != 1 || boxes[0].Paint.Kind != PaintText {
		t.Errorf("a loose li lays out its content without a marker, got %+v", boxes)
	}
	if boxes[0].X != 0 {
		t.Errorf("loose li content is not indented, got x=%f", boxes[0].X)
	}
}

func TestMarkerGlyph(t *testing.T) {
	cases := []struct {
		depth int
		want  string
	}{
		{1, "•"},
		{2, "◦"},
		{3, "▪"},
		{7, "▪"},
	}
	for _, c := range cases {
		if got := markerGlyph(c.depth); got != c.want {
			t.Errorf("markerGlyph(%d) = %q, want %q", c.depth, got, c.want)
		}
	}
}
