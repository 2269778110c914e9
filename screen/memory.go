package screen

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Memory: image.RGBA 위의 화면. 테스트와 ebiten 백엔드가 쓴다.
type Memory struct {
	img *image.RGBA
}

// NewMemory: w*h 메모리 화면
func NewMemory(width, height int) *Memory {
	return &Memory{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image: 내부 버퍼 (읽기용)
func (m *Memory) Image() *image.RGBA {
	return m.img
}

func (m *Memory) Bounds() image.Rectangle {
	return m.img.Bounds()
}

func (m *Memory) Clear(c Color) {
	xdraw.Draw(m.img, m.img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
}

func (m *Memory) SetPixel(x, y int, c Color) {
	m.img.Set(x, y, c)
}

// Pixel: (x, y)의 색 (비-미리곱)
func (m *Memory) Pixel(x, y int) Color {
	c := color.NRGBAModel.Convert(m.img.At(x, y)).(color.NRGBA)
	return RGBA(c.R, c.G, c.B, c.A)
}

func (m *Memory) Blit(s *Scratch, x, y int) {
	xdraw.Copy(m.img, image.Pt(x, y), s, s.Bounds(), xdraw.Over, nil)
}

// Present: 메모리 화면은 할 일 없음
func (m *Memory) Present() error {
	return nil
}
