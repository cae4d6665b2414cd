// Package images decodes image assets for layout and rendering. A Loader
// resolves relative sources against the document's directory and caches
// decoded pixels, so the dimension query during layout and the pixel
// fetch during rendering decode each file once. Inline data: URIs are
// accepted in place of file paths. There is no network fetching.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Loader loads and caches decoded images. Each Loader owns its cache;
// separate document loads get separate Loaders and share nothing.
type Loader struct {
	baseDir string
	mu      sync.RWMutex
	cache   map[string]image.Image
}

// NewLoader returns a Loader resolving relative sources against baseDir.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		baseDir: baseDir,
		cache:   make(map[string]image.Image),
	}
}

// Resolve maps a src attribute value to a loadable location. Data URIs
// and absolute paths pass through; relative paths resolve against the
// loader's base directory.
func (l *Loader) Resolve(src string) string {
	if IsDataURI(src) || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(l.baseDir, src)
}

// LoadImage loads an image from the filesystem or a data URI.
func (l *Loader) LoadImage(src string) (image.Image, error) {
	key := l.Resolve(src)

	// Check cache first
	l.mu.RLock()
	if img, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	var img image.Image
	var err error
	if IsDataURI(key) {
		img, err = LoadImageFromDataURI(key)
	} else {
		img, err = decodeFile(key)
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[key] = img
	l.mu.Unlock()

	return img, nil
}

// Dimensions returns the natural width and height of an image.
func (l *Loader) Dimensions(src string) (width, height int, err error) {
	img, err := l.LoadImage(src)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// IsDataURI reports whether src is an inline data: URI.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}

// LoadImageFromDataURI decodes a base64-encoded data URI into an image.
func LoadImageFromDataURI(uri string) (image.Image, error) {
	comma := strings.Index(uri, ",")
	if comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	meta, payload := uri[:comma], uri[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data URI encoding: %s", meta)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URI payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return img, nil
}
