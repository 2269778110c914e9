// Package field: 격자 지도와 시야(FOV) 상태.
package field

import "fmt"

// Cell: 지도 한 칸의 상태
type Cell uint8

const (
	Blank Cell = iota
	Wall
	Floor
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	default:
		return "blank"
	}
}

// Map: Cells, Known, Glared는 모두 y*Width+x로 인덱싱한다.
type Map struct {
	Width, Height int
	Cells         []Cell
	Known         []bool // 한 번이라도 보인 칸
	Glared        []bool // 지금 시야 안의 칸
}

// New: 모두 Blank인 w*h 지도
func New(width, height int) *Map {
	n := width * height
	return &Map{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, n),
		Known:  make([]bool, n),
		Glared: make([]bool, n),
	}
}

// In: (x, y)가 지도 안인지
func (m *Map) In(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index: (x, y) → 배열 인덱스
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// At: 범위 밖은 Blank
func (m *Map) At(x, y int) Cell {
	if !m.In(x, y) {
		return Blank
	}
	return m.Cells[m.Index(x, y)]
}

// Set: 범위 밖은 무시
func (m *Map) Set(x, y int, c Cell) {
	if m.In(x, y) {
		m.Cells[m.Index(x, y)] = c
	}
}

// cellFor: 지도 문자 → 칸 상태
func cellFor(ch rune) Cell {
	switch ch {
	case '#':
		return Wall
	case ',':
		return Floor
	default:
		return Blank
	}
}

// Parse: 줄 단위 문자열 지도. 짧은 줄과 모자란 줄은 Blank로 채운다.
func Parse(width, height int, lines []string) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("field: invalid map size %dx%d", width, height)
	}
	m := New(width, height)
	for y, line := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, ch := range line {
			if x >= width {
				break
			}
			m.Cells[m.Index(x, y)] = cellFor(ch)
			x++
		}
	}
	return m, nil
}
