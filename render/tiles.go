package render

import (
	"go_jaso/field"
	"go_jaso/screen"
)

var (
	GlaredColor = screen.RGBA(255, 255, 255, 255)
	DimColor    = screen.RGBA(80, 80, 80, 255)
	Transparent = screen.RGBA(0, 0, 0, 0)
)

// Tile: 칸 상태 + 시야 → 문자와 색. 모르는 칸은 그리지 않는다.
func Tile(c field.Cell, known, glared bool) (ch rune, color screen.Color, visible bool) {
	if !known {
		return 0, 0, false
	}
	switch c {
	case field.Wall:
		ch = '#'
	case field.Floor:
		ch = '?'
	default:
		ch = '.'
	}
	color = DimColor
	if glared {
		color = GlaredColor
	}
	return ch, color, true
}

// DrawField: 지도 전체를 Latin 경로로 (ox + x*8, oy + y*16)에 그린다.
func (r *Renderer) DrawField(sink Sink, m *field.Map, ox, oy int) error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := m.Index(x, y)
			ch, color, ok := Tile(m.Cells[i], m.Known[i], m.Glared[i])
			if !ok {
				continue
			}
			if _, err := r.DrawText(sink, string(ch), ox+x*LatinAdvance, oy+y*LineHeight, color, Transparent); err != nil {
				return err
			}
		}
	}
	return nil
}
