package screen

import (
	"image"
	"image/color"
)

// Scratch: 글리프 하나를 그릴 임시 합성 버퍼.
// Pool에서 빌려 쓰고 반드시 돌려준다.
type Scratch struct {
	width, height int
	buffer        []uint32
}

// NewScratch: w*h 스크래치 생성
func NewScratch(w, h int) *Scratch {
	return &Scratch{
		width:  w,
		height: h,
		buffer: make([]uint32, w*h),
	}
}

func (s *Scratch) Width() int  { return s.width }
func (s *Scratch) Height() int { return s.height }

// Fill: 전체를 c로 채우기
func (s *Scratch) Fill(c Color) {
	for i := range s.buffer {
		s.buffer[i] = uint32(c)
	}
}

// Plot: (x, y)에 c 찍기. 범위 밖은 무시
func (s *Scratch) Plot(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.buffer[y*s.width+x] = uint32(c)
}

// Pixel: (x, y)의 색
func (s *Scratch) Pixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return Color(s.buffer[y*s.width+x])
}

// image.Image 구현: x/image/draw로 바로 복사할 수 있게
func (s *Scratch) ColorModel() color.Model { return color.NRGBAModel }

func (s *Scratch) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

func (s *Scratch) At(x, y int) color.Color {
	r, g, b, a := s.Pixel(x, y).Channels()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// reset: 다음 사용자를 위해 비움
func (s *Scratch) reset() {
	for i := range s.buffer {
		s.buffer[i] = 0
	}
}

// Pool: 크기별 스크래치 재사용.
// 렌더 루프가 단일 스레드라 잠금은 없다.
type Pool struct {
	free map[image.Point][]*Scratch
}

// NewPool: 빈 풀
func NewPool() *Pool {
	return &Pool{free: make(map[image.Point][]*Scratch)}
}

// Acquire: w*h 스크래치를 빌린다
func (p *Pool) Acquire(w, h int) *Scratch {
	key := image.Pt(w, h)
	list := p.free[key]
	if n := len(list); n > 0 {
		s := list[n-1]
		p.free[key] = list[:n-1]
		return s
	}
	return NewScratch(w, h)
}

// Release: 비운 뒤 풀에 반납
func (p *Pool) Release(s *Scratch) {
	if s == nil {
		return
	}
	s.reset()
	key := image.Pt(s.width, s.height)
	p.free[key] = append(p.free[key], s)
}

// With: 스크래치를 빌려 fn을 실행하고, 어떤 경로로 빠져나가든 반납한다.
func (p *Pool) With(w, h int, fn func(s *Scratch)) {
	s := p.Acquire(w, h)
	defer p.Release(s)
	fn(s)
}
