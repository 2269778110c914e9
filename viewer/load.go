package viewer

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"go_jaso/config"
	"go_jaso/field"
	"go_jaso/font"
	"go_jaso/font/hangul"
	"go_jaso/render"
)

// 지도 크기
const (
	MapWidth  = 40
	MapHeight = 40
)

// Load: 설정에 적힌 글꼴, 지도, 아트를 읽어 Viewer를 만든다.
// 아트 이미지만 없어도 되고, 나머지는 없으면 오류.
func Load(cfg config.Config) (*Viewer, error) {
	// 글꼴이 없으면 아무것도 그릴 수 없다
	latin, err := font.LoadLatin(cfg.LatinFont)
	if err != nil {
		return nil, fmt.Errorf("영문 글꼴 로드 실패 (assets/bitmap_fonts/README.md 참고): %w", err)
	}
	set, err := hangul.Load(cfg.HangulFont)
	if err != nil {
		return nil, fmt.Errorf("한글 글꼴 로드 실패 (assets/bitmap_fonts/README.md 참고): %w", err)
	}

	m, err := field.Load(cfg.MapFile, MapWidth, MapHeight)
	if err != nil {
		return nil, fmt.Errorf("지도 로드 실패: %w", err)
	}

	v := New(render.New(latin, set), m, cfg.Banner)

	art, err := render.LoadArt(cfg.ArtImage)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("⚠️ %s 없음, 아스키 아트 없이 실행합니다.", cfg.ArtImage)
	case err != nil:
		return nil, fmt.Errorf("아트 이미지 로드 실패: %w", err)
	default:
		v.SetArt(art)
	}
	return v, nil
}
