// Package jaso: 문자 분류와 한글 음절 분해.
// 렌더러는 이 패키지를 인터페이스 경계로만 사용한다.
package jaso

// Script: 문자가 어느 렌더링 경로로 가는지
type Script uint8

const (
	Other Script = iota
	Ascii
	Hangul
)

const (
	SyllableFirst rune = 0xAC00 // 가
	SyllableLast  rune = 0xD7A3 // 힣
)

func (s Script) String() string {
	switch s {
	case Ascii:
		return "ascii"
	case Hangul:
		return "hangul"
	default:
		return "other"
	}
}

// Classify: 모든 rune에 대해 정의됨
func Classify(r rune) Script {
	switch {
	case r >= 0 && r < 0x80:
		return Ascii
	case r >= SyllableFirst && r <= SyllableLast:
		return Hangul
	default:
		return Other
	}
}
