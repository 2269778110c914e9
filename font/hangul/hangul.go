// Package hangul: 초성/중성/종성 세 벌의 아틀라스를 겹쳐 한 음절 글리프를 만든다.
package hangul

import (
	"errors"
	"fmt"
	"image"

	"go_jaso/font"
)

const (
	InitialShapes = 19
	MedialShapes  = 21
	FinalShapes   = 28

	InitialVariants = 8
	MedialVariants  = 4
	FinalVariants   = 4

	// 합성 글리프 크기
	Width  = 16
	Height = 16
)

// ErrSelectorRange: 분해 서비스가 아틀라스와 맞지 않는 인덱스를 줌
var ErrSelectorRange = errors.New("hangul: selector out of range")

// Set: 초성/중성/종성 아틀라스 묶음 (읽기 전용)
type Set struct {
	Initial *font.Atlas
	Medial  *font.Atlas
	Final   *font.Atlas
}

// NewSet: 한 장의 시트에서 세 벌을 모두 읽는다.
// 가로 28글자, 세로 16글자(8,4,4), 각 글자는 16x16
func NewSet(img image.Image) (*Set, error) {
	initial, err := font.BuildAtlas(img, font.HangulInitial)
	if err != nil {
		return nil, err
	}
	medial, err := font.BuildAtlas(img, font.HangulMedial)
	if err != nil {
		return nil, err
	}
	final, err := font.BuildAtlas(img, font.HangulFinal)
	if err != nil {
		return nil, err
	}
	return &Set{Initial: initial, Medial: medial, Final: final}, nil
}

// Load: 파일에서 한글 시트를 읽어 Set을 만든다.
func Load(path string) (*Set, error) {
	img, err := font.Open(path)
	if err != nil {
		return nil, err
	}
	return NewSet(img)
}

// Selector: 한 글자에 대한 자모 인덱스와 벌(variant) 번호.
// 글자마다 새로 만들고 바로 버린다.
type Selector struct {
	Initial int // 0..18
	Medial  int // 0..20
	Final   int // 0..27, HasFinal일 때만 의미 있음

	InitialVariant int // 0..7
	MedialVariant  int // 0..3
	FinalVariant   int // 0..3

	HasFinal bool
}

// CellIndices: 각 아틀라스에서 고를 셀 번호.
// 받침이 없으면 종성은 0번(빈 글리프).
func (s Selector) CellIndices() (initial, medial, final int) {
	initial = s.Initial + s.InitialVariant*InitialShapes
	medial = s.Medial + s.MedialVariant*MedialShapes
	if s.HasFinal {
		final = s.Final + s.FinalVariant*FinalShapes
	}
	return initial, medial, final
}

func (s Selector) validate() error {
	check := func(name string, v, n int) error {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %s=%d, want [0,%d)", ErrSelectorRange, name, v, n)
		}
		return nil
	}
	if err := check("initial", s.Initial, InitialShapes); err != nil {
		return err
	}
	if err := check("medial", s.Medial, MedialShapes); err != nil {
		return err
	}
	if err := check("initial variant", s.InitialVariant, InitialVariants); err != nil {
		return err
	}
	if err := check("medial variant", s.MedialVariant, MedialVariants); err != nil {
		return err
	}
	if !s.HasFinal {
		return nil
	}
	if err := check("final", s.Final, FinalShapes); err != nil {
		return err
	}
	return check("final variant", s.FinalVariant, FinalVariants)
}
