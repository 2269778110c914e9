package hangul

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"go_jaso/font"
)

// testSheet: 28x16 격자(448x256)에 좌표 해시로 잉크를 뿌린 시트
func testSheet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 28*16, 16*16))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if (x*31+y*17+(x*y)%7)%4 == 0 {
				img.Set(x, y, color.NRGBA{A: 0xFF})
			}
		}
	}
	return img
}

func testSet(t *testing.T) *Set {
	t.Helper()
	set, err := NewSet(testSheet())
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func mustLookup(t *testing.T, a *font.Atlas, i int) font.Cell {
	t.Helper()
	c, err := a.Lookup(i)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewSetCounts(t *testing.T) {
	set := testSet(t)
	if set.Initial.Len() != 152 || set.Medial.Len() != 84 || set.Final.Len() != 112 {
		t.Errorf("unexpected counts %d/%d/%d", set.Initial.Len(), set.Medial.Len(), set.Final.Len())
	}

	_, err := NewSet(image.NewNRGBA(image.Rect(0, 0, 28*16, 15*16)))
	if !errors.Is(err, font.ErrMalformedAtlas) {
		t.Errorf("expected ErrMalformedAtlas for short sheet, got %v", err)
	}
}

func TestCellIndices(t *testing.T) {
	tests := []struct {
		sel        Selector
		ii, mi, fi int
	}{
		{Selector{}, 0, 0, 0},
		{Selector{Initial: 2, Medial: 2}, 2, 2, 0},
		{Selector{Initial: 18, Medial: 20, Final: 27, InitialVariant: 7, MedialVariant: 3, FinalVariant: 3, HasFinal: true}, 151, 83, 111},
		{Selector{Initial: 5, Medial: 1, InitialVariant: 1, MedialVariant: 2, FinalVariant: 3}, 24, 43, 0},
		{Selector{Final: 4, FinalVariant: 1, HasFinal: true}, 0, 0, 32},
	}
	for _, tt := range tests {
		ii, mi, fi := tt.sel.CellIndices()
		if ii != tt.ii || mi != tt.mi || fi != tt.fi {
			t.Errorf("%+v: expected (%d,%d,%d) got (%d,%d,%d)", tt.sel, tt.ii, tt.mi, tt.fi, ii, mi, fi)
		}
	}
}

func TestComposeMergeLaw(t *testing.T) {
	set := testSet(t)
	sels := []Selector{
		{Initial: 0, Medial: 0},
		{Initial: 3, Medial: 7, Final: 8, InitialVariant: 2, MedialVariant: 1, FinalVariant: 2, HasFinal: true},
		{Initial: 18, Medial: 20, Final: 27, InitialVariant: 7, MedialVariant: 3, FinalVariant: 3, HasFinal: true},
	}
	for _, sel := range sels {
		got, err := Compose(set, sel)
		if err != nil {
			t.Fatal(err)
		}
		ii, mi, fi := sel.CellIndices()
		planes := []font.Cell{
			mustLookup(t, set.Initial, ii),
			mustLookup(t, set.Medial, mi),
			mustLookup(t, set.Final, fi),
		}
		if got.Width != Width || got.Height() != Height {
			t.Fatalf("unexpected raster size %dx%d", got.Width, got.Height())
		}
		for j := 0; j < Height; j++ {
			for k := 0; k < Width; k++ {
				ink := planes[0].Ink(k, j) || planes[1].Ink(k, j) || planes[2].Ink(k, j)
				if got.Ink(k, j) != ink {
					t.Errorf("%+v: pixel (%d,%d) expected %v", sel, k, j, ink)
				}
			}
		}
		if !got.Equal(font.Or(planes[2], planes[0], planes[1])) {
			t.Errorf("%+v: plane order changed the result", sel)
		}
	}
}

func TestComposeNoFinalUsesBlank(t *testing.T) {
	set := testSet(t)
	blank := mustLookup(t, set.Final, 0)
	for fv := 0; fv < FinalVariants; fv++ {
		for fi := 0; fi < FinalShapes; fi++ {
			sel := Selector{Initial: 4, Medial: 6, Final: fi, InitialVariant: 1, MedialVariant: 2, FinalVariant: fv}
			got, err := Compose(set, sel)
			if err != nil {
				t.Fatal(err)
			}
			want := font.Or(mustLookup(t, set.Initial, 4+19), mustLookup(t, set.Medial, 6+42), blank)
			if !got.Equal(want) {
				t.Errorf("final=%d variant=%d: expected blank final plane", fi, fv)
			}
		}
	}
}

func TestComposeRejectsOutOfRange(t *testing.T) {
	set := testSet(t)
	bad := []Selector{
		{Initial: 19},
		{Initial: -1},
		{Medial: 21},
		{InitialVariant: 8},
		{MedialVariant: 4},
		{Final: 28, HasFinal: true},
		{Final: 1, FinalVariant: 4, HasFinal: true},
		{Final: -1, HasFinal: true},
	}
	for _, sel := range bad {
		if _, err := Compose(set, sel); !errors.Is(err, ErrSelectorRange) {
			t.Errorf("%+v: expected ErrSelectorRange, got %v", sel, err)
		}
	}
}
