package font

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// indexSheet: 각 셀의 0번 행에 셀 인덱스를 비트로 찍은 시트
func indexSheet(p Plane) *image.NRGBA {
	cols := p.Cols[1]
	rows := p.Rows[1]
	img := image.NewNRGBA(image.Rect(0, 0, cols*p.CellWidth, rows*p.CellHeight))
	for y := p.Rows[0]; y < rows; y++ {
		for x := p.Cols[0]; x < cols; x++ {
			idx := (y-p.Rows[0])*p.ColCount() + (x - p.Cols[0])
			for i := 0; i < p.CellWidth; i++ {
				if idx&(1<<uint(p.CellWidth-1-i)) != 0 {
					img.Set(x*p.CellWidth+i, y*p.CellHeight, color.NRGBA{A: 0xFF})
				}
			}
		}
	}
	return img
}

func TestExtractBits(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	// .#..
	// ....
	// ##.#
	img.Set(1, 0, color.NRGBA{R: 10, A: 1})
	img.Set(0, 2, color.NRGBA{A: 0xFF})
	img.Set(1, 2, color.NRGBA{A: 0xFF})
	img.Set(3, 2, color.NRGBA{A: 0xFF})
	// 알파 0인 색은 배경
	img.Set(2, 1, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF})

	c := Extract(img, 0, 0, 4, 3)
	want := []uint32{0b0100, 0b0000, 0b1101}
	if c.Width != 4 || c.Height() != 3 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height())
	}
	for j, v := range want {
		if c.Rows[j] != v {
			t.Errorf("row %d: expected %04b got %04b", j, v, c.Rows[j])
		}
	}
}

func TestExtractRoundTrip(t *testing.T) {
	const w, h = 16, 16
	img := image.NewNRGBA(image.Rect(0, 0, w+3, h+5))
	ink := func(i, j int) bool { return (i*7+j*13)%5 == 0 || i == j }
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if ink(i, j) {
				img.Set(3+i, 5+j, color.NRGBA{G: 0xFF, A: 0xFF})
			}
		}
	}

	c := Extract(img, 3, 5, w, h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if c.Ink(i, j) != ink(i, j) {
				t.Errorf("pixel (%d,%d): expected ink=%v", i, j, ink(i, j))
			}
		}
	}
}

func TestExtractOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out of bounds cell")
		}
	}()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	Extract(img, 4, 0, 8, 8)
}

func TestLatinAddressing(t *testing.T) {
	img := indexSheet(Latin)
	atlas, err := BuildAtlas(img, Latin)
	if err != nil {
		t.Fatal(err)
	}
	if atlas.Len() != 128 {
		t.Fatalf("unexpected cell count %d", atlas.Len())
	}
	for c := 0; c < 128; c++ {
		cell, err := atlas.Lookup(c)
		if err != nil {
			t.Fatal(err)
		}
		if cell.Rows[0] != uint32(c) {
			t.Errorf("cell %d: row 0 is %08b", c, cell.Rows[0])
		}
		grid := Extract(img, (c%16)*8, (c/16)*16, 8, 16)
		if !cell.Equal(grid) {
			t.Errorf("cell %d differs from grid position (%d,%d)", c, c%16, c/16)
		}
	}
	if _, err := atlas.Lookup(128); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if _, err := atlas.Lookup(-1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestRowOffsetPlane(t *testing.T) {
	img := indexSheet(HangulMedial)
	atlas, err := BuildAtlas(img, HangulMedial)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < atlas.Len(); i++ {
		cell, _ := atlas.Lookup(i)
		if cell.Rows[0] != uint32(i) {
			t.Errorf("cell %d: row 0 is %016b", i, cell.Rows[0])
		}
	}
}

func TestMalformedAtlas(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
	}{
		{"one row short", image.Rect(0, 0, 128, 112)},
		{"one column short", image.Rect(0, 0, 120, 128)},
		{"partial cells", image.Rect(0, 0, 127, 127)},
		{"empty", image.Rect(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildAtlas(image.NewNRGBA(tt.rect), Latin)
			if !errors.Is(err, ErrMalformedAtlas) {
				t.Errorf("expected ErrMalformedAtlas, got %v", err)
			}
		})
	}
}

func TestDecodePNG(t *testing.T) {
	src := indexSheet(Latin)

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatal(err)
	}
	img, err := Decode(&pngBuf)
	if err != nil {
		t.Fatal(err)
	}
	atlas, err := BuildAtlas(img, Latin)
	if err != nil {
		t.Fatal(err)
	}
	cell, _ := atlas.Lookup('A')
	if cell.Rows[0] != 'A' {
		t.Errorf("cell 'A' row 0 is %08b", cell.Rows[0])
	}

	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected decode error")
	}
}

func TestOr(t *testing.T) {
	a := Cell{Width: 4, Rows: []uint32{0b1000, 0b0001}}
	b := Cell{Width: 4, Rows: []uint32{0b0100, 0b0001}}
	got := Or(a, b)
	want := Cell{Width: 4, Rows: []uint32{0b1100, 0b0001}}
	if !got.Equal(want) {
		t.Errorf("expected %v got %v", want.Rows, got.Rows)
	}
	if !Or(b, a).Equal(got) {
		t.Error("Or must not depend on argument order")
	}
}
