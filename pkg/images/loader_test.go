package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestPNGDataURI creates a small 2x2 red PNG as a data URI.
func createTestPNGDataURI() string {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.Set(x, y, red)
		}
	}
	var buf bytes.Buffer
	png.Encode(&buf, img)
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return "data:image/png;base64," + encoded
}

// writeTestPNG writes a w x h PNG into dir and returns its file name.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write test png: %v", err)
	}
	return name
}

func TestIsDataURI(t *testing.T) {
	if !IsDataURI("data:image/png;base64,abc") {
		t.Error("expected true for data URI")
	}
	if IsDataURI("/path/to/file.png") {
		t.Error("expected false for file path")
	}
	if IsDataURI("") {
		t.Error("expected false for empty string")
	}
}

func TestLoadImageFromDataURI(t *testing.T) {
	uri := createTestPNGDataURI()
	img, err := LoadImageFromDataURI(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestLoadImageFromDataURI_Invalid(t *testing.T) {
	tests := []string{
		"not-a-data-uri",
		"data:image/png;base64", // no comma
		"data:image/png;base64,!!!invalid-base64!!!",
		"data:image/png;base64,aGVsbG8=", // valid base64 but not an image
	}
	for _, uri := range tests {
		_, err := LoadImageFromDataURI(uri)
		if err == nil {
			t.Errorf("expected error for %q", uri)
		}
	}
}

func TestLoader_DataURI(t *testing.T) {
	loader := NewLoader(".")
	uri := createTestPNGDataURI()
	img, err := loader.LoadImage(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Errorf("expected 2x2 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Second call should hit cache
	img2, err := loader.LoadImage(uri)
	if err != nil {
		t.Fatalf("unexpected error on cached load: %v", err)
	}
	if img != img2 {
		t.Error("expected cached image to be the same pointer")
	}
}

func TestLoader_RelativePath(t *testing.T) {
	dir := t.TempDir()
	name := writeTestPNG(t, dir, "pic.png", 3, 5)

	loader := NewLoader(dir)
	w, h, err := loader.Dimensions(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 3 || h != 5 {
		t.Errorf("expected 3x5, got %dx%d", w, h)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(t.TempDir())
	if _, _, err := loader.Dimensions("missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoader_SeparateCaches(t *testing.T) {
	dir := t.TempDir()
	name := writeTestPNG(t, dir, "pic.png", 2, 2)

	a := NewLoader(dir)
	b := NewLoader(dir)
	imgA, err := a.LoadImage(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	imgB, err := b.LoadImage(name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imgA == imgB {
		t.Error("expected loaders to decode independently")
	}
}

func TestDimensions_DataURI(t *testing.T) {
	loader := NewLoader(".")
	uri := createTestPNGDataURI()
	w, h, err := loader.Dimensions(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 2 || h != 2 {
		t.Errorf("expected 2x2, got %dx%d", w, h)
	}
}
