package render

import (
	"go_jaso/font"
	"go_jaso/screen"
)

// RasterSink: 글리프를 스크래치에 풀어 화면에 복사한다.
type RasterSink struct {
	surface screen.Surface
	pool    *screen.Pool
}

// NewRasterSink: surface에 그리는 sink
func NewRasterSink(surface screen.Surface) *RasterSink {
	return &RasterSink{surface: surface, pool: screen.NewPool()}
}

// Draw: 배경으로 채우고 잉크 비트를 찍은 뒤 (x, y)에 복사
func (s *RasterSink) Draw(glyph font.Cell, x, y int, ink, bg screen.Color) {
	w, h := glyph.Width, glyph.Height()
	if w <= 0 || h <= 0 {
		return
	}
	s.pool.With(w, h, func(scratch *screen.Scratch) {
		scratch.Fill(bg)
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				if glyph.Ink(i, j) {
					scratch.Plot(i, j, ink)
				}
			}
		}
		s.surface.Blit(scratch, x, y)
	})
}
