package font

import (
	"errors"
	"fmt"
	"image"
	"log"
)

var (
	// ErrMalformedAtlas: 시트에서 뽑은 셀 개수가 기대값과 다름
	ErrMalformedAtlas = errors.New("font: malformed atlas image")
	// ErrIndexRange: 아틀라스 범위를 벗어난 인덱스
	ErrIndexRange = errors.New("font: atlas index out of range")
)

// Plane: 시트 위 글꼴 한 벌의 배치.
// Rows, Cols는 [시작, 끝) 격자 범위.
type Plane struct {
	Name       string
	CellWidth  int
	CellHeight int
	Rows       [2]int
	Cols       [2]int
	Expected   int
}

// ColCount: 한 격자 행에 들어가는 셀 수
func (p Plane) ColCount() int {
	return p.Cols[1] - p.Cols[0]
}

var (
	// 영문 가로 16글자, 세로 8글자, 각 글자는 8x16
	Latin = Plane{
		Name:      "latin",
		CellWidth: 8, CellHeight: 16,
		Rows: [2]int{0, 8}, Cols: [2]int{0, 16},
		Expected: 128,
	}
	// 한글 초성 8벌 x 19
	HangulInitial = Plane{
		Name:      "hangul-initial",
		CellWidth: 16, CellHeight: 16,
		Rows: [2]int{0, 8}, Cols: [2]int{0, 19},
		Expected: 152,
	}
	// 한글 중성 4벌 x 21
	HangulMedial = Plane{
		Name:      "hangul-medial",
		CellWidth: 16, CellHeight: 16,
		Rows: [2]int{8, 12}, Cols: [2]int{0, 21},
		Expected: 84,
	}
	// 한글 종성 4벌 x 28, 0번은 받침 없음(빈 글리프)
	HangulFinal = Plane{
		Name:      "hangul-final",
		CellWidth: 16, CellHeight: 16,
		Rows: [2]int{12, 16}, Cols: [2]int{0, 28},
		Expected: 112,
	}
)

// Atlas: 셀 인덱스 -> Cell. 만든 뒤에는 읽기 전용.
type Atlas struct {
	plane Plane
	cells []Cell
}

// BuildAtlas: 격자를 행 우선으로 훑으며 셀을 추출한다.
// 이미지에 다 들어가지 않는 셀은 건너뛰고, 최종 개수가 Expected와
// 다르면 ErrMalformedAtlas.
func BuildAtlas(img image.Image, p Plane) (*Atlas, error) {
	if p.CellWidth <= 0 || p.CellHeight <= 0 || p.CellWidth > MaxCellWidth {
		return nil, fmt.Errorf("%w: %s: bad cell size %dx%d", ErrMalformedAtlas, p.Name, p.CellWidth, p.CellHeight)
	}

	bounds := img.Bounds()
	cells := make([]Cell, 0, p.Expected)
	for y := p.Rows[0]; y < p.Rows[1]; y++ {
		for x := p.Cols[0]; x < p.Cols[1]; x++ {
			px := bounds.Min.X + x*p.CellWidth
			py := bounds.Min.Y + y*p.CellHeight
			rect := image.Rect(px, py, px+p.CellWidth, py+p.CellHeight)
			if !rect.In(bounds) {
				continue
			}
			cells = append(cells, Extract(img, px, py, p.CellWidth, p.CellHeight))
		}
	}

	if len(cells) != p.Expected {
		return nil, fmt.Errorf("%w: %s: extracted %d cells, want %d (image %dx%d)",
			ErrMalformedAtlas, p.Name, len(cells), p.Expected, bounds.Dx(), bounds.Dy())
	}
	log.Printf("[font] %s 아틀라스 생성: %d 셀 (%dx%d)", p.Name, len(cells), p.CellWidth, p.CellHeight)
	return &Atlas{plane: p, cells: cells}, nil
}

// Plane: 아틀라스를 만든 배치 정보
func (a *Atlas) Plane() Plane {
	return a.plane
}

// Len: 셀 개수
func (a *Atlas) Len() int {
	return len(a.cells)
}

// Lookup: 범위 검사 후 셀 반환
func (a *Atlas) Lookup(i int) (Cell, error) {
	if i < 0 || i >= len(a.cells) {
		return Cell{}, fmt.Errorf("%w: %s[%d], len %d", ErrIndexRange, a.plane.Name, i, len(a.cells))
	}
	return a.cells[i], nil
}
