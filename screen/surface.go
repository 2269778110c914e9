package screen

import (
	"image"
	"image/color"
)

// Color: ARGB 8888
type Color uint32

// RGBA: 채널 값으로 Color 생성
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels: (r, g, b, a) 분해
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// RGBA: color.Color 구현 (알파 미리곱)
func (c Color) RGBA() (r, g, b, a uint32) {
	cr, cg, cb, ca := c.Channels()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}.RGBA()
}

// Surface: 렌더러가 그리는 대상. 실제 창/메모리 버퍼 구현을 숨긴다.
type Surface interface {
	Bounds() image.Rectangle
	Clear(c Color)
	SetPixel(x, y int, c Color)
	// Blit: 스크래치를 (x, y)에 그대로 복사 (회전/확대 없음)
	Blit(s *Scratch, x, y int)
	Present() error
}

// over: src를 dst 위에 알파 합성
func over(dst, src Color) Color {
	sr, sg, sb, sa := src.Channels()
	switch sa {
	case 0:
		return dst
	case 0xFF:
		return src
	}
	dr, dg, db, da := dst.Channels()
	inv := 0xFF - uint32(sa)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*uint32(sa) + uint32(d)*inv) / 0xFF)
	}
	a := uint32(sa) + uint32(da)*inv/0xFF
	return RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), uint8(a))
}
