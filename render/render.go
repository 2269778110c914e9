// Package render: 문자열을 문자 종류별 경로로 보내 글리프를 그린다.
package render

import (
	"fmt"

	"go_jaso/font"
	"go_jaso/font/hangul"
	"go_jaso/jaso"
	"go_jaso/screen"
)

// 고정 폭 전진량
const (
	LatinAdvance  = 8
	HangulAdvance = 16

	// 줄 높이 (두 글꼴 모두 16픽셀)
	LineHeight = 16
)

// DrawCall: 글리프 하나를 (X, Y)에 그리라는 요청
type DrawCall struct {
	Glyph  font.Cell
	X, Y   int
	Script jaso.Script
}

// Sink: 글리프 래스터를 실제로 찍는 쪽
type Sink interface {
	Draw(glyph font.Cell, x, y int, ink, bg screen.Color)
}

// Renderer: 아틀라스와 외부 분류/분해기를 묶는다.
// 아틀라스는 읽기 전용으로 공유된다.
type Renderer struct {
	latin      *font.Atlas
	hangul     *hangul.Set
	classify   func(rune) jaso.Script
	decomposer jaso.Decomposer
}

// Option: Renderer 설정
type Option func(*Renderer)

// WithClassifier: 기본 jaso.Classify 대신 쓸 분류기
func WithClassifier(fn func(rune) jaso.Script) Option {
	return func(r *Renderer) { r.classify = fn }
}

// WithDecomposer: 기본 NFD 대신 쓸 분해기
func WithDecomposer(d jaso.Decomposer) Option {
	return func(r *Renderer) { r.decomposer = d }
}

// New: latin, set은 필수
func New(latin *font.Atlas, set *hangul.Set, opts ...Option) *Renderer {
	r := &Renderer{
		latin:      latin,
		hangul:     set,
		classify:   jaso.Classify,
		decomposer: jaso.NewNFD(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Glyph: 글자 하나의 래스터와 전진량. Other면 빈 셀, 전진량 0.
func (r *Renderer) Glyph(ch rune) (cell font.Cell, advance int, script jaso.Script, err error) {
	script = r.classify(ch)
	switch script {
	case jaso.Ascii:
		// 코드포인트가 곧 아틀라스 인덱스
		cell, err = r.latin.Lookup(int(ch))
		if err != nil {
			return font.Cell{}, 0, script, fmt.Errorf("render: %q: %w", ch, err)
		}
		return cell, LatinAdvance, script, nil

	case jaso.Hangul:
		sel, err := r.decomposer.Decompose(ch)
		if err != nil {
			return font.Cell{}, 0, script, fmt.Errorf("render: %q: %w", ch, err)
		}
		cell, err = hangul.Compose(r.hangul, sel)
		if err != nil {
			return font.Cell{}, 0, script, fmt.Errorf("render: %q: %w", ch, err)
		}
		return cell, HangulAdvance, script, nil
	}
	return font.Cell{}, 0, script, nil
}

// Layout: text를 (x, y)부터 배치한다. y는 건드리지 않는다.
// 반환값은 그릴 목록과 끝난 커서 x.
func (r *Renderer) Layout(text string, x, y int) ([]DrawCall, int, error) {
	calls := make([]DrawCall, 0, len(text))
	for _, ch := range text {
		cell, advance, script, err := r.Glyph(ch)
		if err != nil {
			return nil, x, err
		}
		if script != jaso.Ascii && script != jaso.Hangul {
			// Other나 알 수 없는 값: 그리지도, 전진하지도 않는다
			continue
		}
		calls = append(calls, DrawCall{Glyph: cell, X: x, Y: y, Script: script})
		x += advance
	}
	return calls, x, nil
}

// DrawText: Layout 후 sink로 그린다. 계약 위반이 있으면 아무것도 그리지 않는다.
func (r *Renderer) DrawText(sink Sink, text string, x, y int, ink, bg screen.Color) (int, error) {
	calls, end, err := r.Layout(text, x, y)
	if err != nil {
		return x, err
	}
	for _, c := range calls {
		sink.Draw(c.Glyph, c.X, c.Y, ink, bg)
	}
	return end, nil
}

// Style: 문자 종류별 색
type Style struct {
	Latin, Hangul, Background screen.Color
}

// DrawStyled: Latin/Hangul 색을 따로 준다.
func (r *Renderer) DrawStyled(sink Sink, text string, x, y int, st Style) (int, error) {
	calls, end, err := r.Layout(text, x, y)
	if err != nil {
		return x, err
	}
	for _, c := range calls {
		ink := st.Latin
		if c.Script == jaso.Hangul {
			ink = st.Hangul
		}
		sink.Draw(c.Glyph, c.X, c.Y, ink, st.Background)
	}
	return end, nil
}
