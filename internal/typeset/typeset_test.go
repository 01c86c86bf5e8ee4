package typeset

import (
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// fakeFace is a font.Face whose glyphs all have the same advance, with a
// call counter so tests can observe memoization.
type fakeFace struct {
	advance fixed.Int26_6
	calls   int
}

func (f *fakeFace) Close() error { return nil }

func (f *fakeFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	f.calls++
	return image.Rectangle{}, nil, image.Point{}, f.advance, true
}

func (f *fakeFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	f.calls++
	return fixed.Rectangle26_6{}, f.advance, true
}

func (f *fakeFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	f.calls++
	return f.advance, true
}

func (f *fakeFace) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *fakeFace) Metrics() font.Metrics { return font.Metrics{} }

func TestMeasurerWidth(t *testing.T) {
	face := &fakeFace{advance: fixed.I(7)}
	m := NewMeasurer(face)

	if got, want := m.Width("abcd"), fixed.I(28); got != want {
		t.Fatalf("Width(abcd) = %v, want %v", got, want)
	}
	if got := m.Width(""); got != 0 {
		t.Fatalf("Width of empty string = %v, want 0", got)
	}
}

func TestMeasurerMemoizes(t *testing.T) {
	face := &fakeFace{advance: fixed.I(7)}
	m := NewMeasurer(face)

	first := m.Width("Springfield")
	callsAfterFirst := face.calls

	second := m.Width("Springfield")
	if face.calls != callsAfterFirst {
		t.Fatalf("Second measurement hit the face (%d calls, was %d)", face.calls, callsAfterFirst)
	}
	if first != second {
		t.Fatalf("Memoized width %v differs from first measurement %v", second, first)
	}
}

func TestCmToPixels(t *testing.T) {
	tests := []struct {
		cm, dpi  float64
		expected float64
	}{
		{2.54, 96, 96},
		{2.54, 300, 300},
		{5.08, 96, 192},
		{0, 96, 0},
	}

	for _, tc := range tests {
		if got := CmToPixels(tc.cm, tc.dpi); got != tc.expected {
			t.Fatalf("CmToPixels(%g, %g) = %g, want %g", tc.cm, tc.dpi, got, tc.expected)
		}
	}
}

func TestPixelsToFixed(t *testing.T) {
	if got, want := PixelsToFixed(150), fixed.I(150); got != want {
		t.Fatalf("PixelsToFixed(150) = %v, want %v", got, want)
	}
	if got, want := PixelsToFixed(1.5), fixed.Int26_6(96); got != want {
		t.Fatalf("PixelsToFixed(1.5) = %v, want %v", got, want)
	}
}

func TestLoadFaceRejectsBadConfig(t *testing.T) {
	if _, err := LoadFace("nonexistent.ttf", 0, 96); err == nil {
		t.Fatal("Expected an error for non-positive font size")
	}
	if _, err := LoadFace("nonexistent.ttf", 12, -1); err == nil {
		t.Fatal("Expected an error for negative DPI")
	}
	if _, err := LoadFace("definitely-not-here.ttf", 12, 96); err == nil {
		t.Fatal("Expected an error for a missing font file")
	}
}
