// Package typeset loads fonts and measures rendered text width. It
// doesn't render.
package typeset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/okdarnoc/addressfmt/internal/cache"
)

const (
	DefaultFontName = "arial"
	DefaultFontSize = 12
	DefaultDPI      = 96

	measureCacheSize = 4096
)

// FindFontFile resolves a font name like "arial" to the path of a font
// file, searching the system font directories. A name that is already a
// path to an existing file is returned unchanged.
func FindFontFile(name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	if filepath.Ext(name) == "" {
		name += ".ttf"
	}

	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("font %q not found in system font directories: %w", name, err)
	}
	return path, nil
}

// LoadFace parses the font file at path and builds a face for the given
// point size and DPI. Errors here are configuration errors; the caller
// must not process any rows after one.
func LoadFace(path string, size int, dpi float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %d", size)
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("dpi must be positive, got %g", dpi)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("building face for %s at %dpt: %w", path, size, err)
	}
	return face, nil
}

// Measurer measures string widths against a fixed face, memoizing
// results. The face and size are fixed for the Measurer's lifetime so
// the width of a given string never changes.
//
// A Measurer is not safe for concurrent use.
type Measurer struct {
	face  font.Face
	cache *cache.Cache[string, fixed.Int26_6]
}

func NewMeasurer(face font.Face) *Measurer {
	return &Measurer{
		face:  face,
		cache: cache.New[string, fixed.Int26_6](measureCacheSize),
	}
}

// Width returns the advance width of s in pixels.
func (m *Measurer) Width(s string) fixed.Int26_6 {
	if w, ok := m.cache.Get(s); ok {
		return w
	}

	w := font.MeasureString(m.face, s)
	m.cache.Set(s, w)
	return w
}

// CmToPixels converts a width in centimeters to pixels at the given DPI.
func CmToPixels(cm, dpi float64) float64 {
	return cm * dpi / 2.54
}

// PixelsToFixed converts a pixel width to the 26.6 fixed-point unit the
// measurer reports in, rounding to the nearest 1/64th.
func PixelsToFixed(px float64) fixed.Int26_6 {
	return fixed.Int26_6(px*64 + 0.5)
}
