package jaso

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"go_jaso/font/hangul"
)

// ErrNotSyllable: 완성형 한글 음절이 아님
var ErrNotSyllable = errors.New("jaso: not a hangul syllable")

// 조합형 자모 시작 코드
const (
	leadBase   rune = 0x1100 // ㄱ (초성)
	vowelBase  rune = 0x1161 // ㅏ (중성)
	trailBase  rune = 0x11A7 // 종성 0번(없음) 바로 앞
	trailFirst rune = 0x11A8
)

// Decomposer: 음절 하나를 자모 인덱스 + 벌 번호로 바꾼다.
type Decomposer interface {
	Decompose(r rune) (hangul.Selector, error)
}

// Variants: 초/중/종성 벌 번호
type Variants struct {
	Initial, Medial, Final int
}

// VariantPolicy: 자모 조합에 따라 벌을 고르는 규칙.
// 실제 글꼴의 규칙표는 여기 없고, 필요한 쪽에서 주입한다.
type VariantPolicy interface {
	Variants(r rune, initial, medial, final int, hasFinal bool) Variants
}

// PlainVariants: 항상 첫 벌
type PlainVariants struct{}

func (PlainVariants) Variants(rune, int, int, int, bool) Variants {
	return Variants{}
}

// VariantTable: 글자별 고정 벌. 표에 없는 글자는 첫 벌.
type VariantTable map[rune]Variants

func (t VariantTable) Variants(r rune, _, _, _ int, _ bool) Variants {
	return t[r]
}

// NFD: 유니코드 정규 분해(NFD)로 자모를 얻는 Decomposer
type NFD struct {
	Policy VariantPolicy
}

// NewNFD: policy가 nil이면 PlainVariants
func NewNFD(policy VariantPolicy) *NFD {
	if policy == nil {
		policy = PlainVariants{}
	}
	return &NFD{Policy: policy}
}

func (d *NFD) Decompose(r rune) (hangul.Selector, error) {
	if Classify(r) != Hangul {
		return hangul.Selector{}, fmt.Errorf("%w: %U", ErrNotSyllable, r)
	}

	jamo := []rune(norm.NFD.String(string(r)))
	if len(jamo) < 2 || len(jamo) > 3 {
		return hangul.Selector{}, fmt.Errorf("%w: %U decomposed into %d jamo", ErrNotSyllable, r, len(jamo))
	}

	sel := hangul.Selector{
		Initial: int(jamo[0] - leadBase),
		Medial:  int(jamo[1] - vowelBase),
	}
	if len(jamo) == 3 {
		if jamo[2] < trailFirst {
			return hangul.Selector{}, fmt.Errorf("%w: %U has bad trailing jamo %U", ErrNotSyllable, r, jamo[2])
		}
		sel.Final = int(jamo[2] - trailBase)
		sel.HasFinal = true
	}

	policy := d.Policy
	if policy == nil {
		policy = PlainVariants{}
	}
	v := policy.Variants(r, sel.Initial, sel.Medial, sel.Final, sel.HasFinal)
	sel.InitialVariant = v.Initial
	sel.MedialVariant = v.Medial
	if sel.HasFinal {
		sel.FinalVariant = v.Final
	}
	return sel, nil
}
