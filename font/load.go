package font

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// Decode: 스프라이트 시트 이미지를 디코딩한다 (png, gif, jpeg, bmp).
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("font: decode: %w", err)
	}
	return img, nil
}

// Open: 파일에서 스프라이트 시트를 읽는다.
func Open(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("font: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// LoadLatin: 영문 시트에서 128자 아틀라스를 만든다.
// 시트는 코드포인트 오름차순이어야 한다 (인덱스 == ASCII 코드).
func LoadLatin(path string) (*Atlas, error) {
	img, err := Open(path)
	if err != nil {
		return nil, err
	}
	return BuildAtlas(img, Latin)
}
