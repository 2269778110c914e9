package render

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"go_jaso/font"
	"go_jaso/screen"
)

// 아스키 아트 블록 크기 (픽셀). 글자 하나가 이 영역의 밝기를 나타낸다.
const (
	ArtBlockWidth  = 10
	ArtBlockHeight = 20
)

// ArtRamp: 어두운 쪽 → 밝은 쪽
const ArtRamp = " .:-=+*#%@"

// ArtLines: 이미지를 블록 단위로 줄여 밝기에 맞는 문자로 바꾼다.
// 한 줄이 한 행이며 모든 줄의 길이는 같다.
func ArtLines(img image.Image, blockW, blockH int) []string {
	b := img.Bounds()
	if blockW <= 0 || blockH <= 0 {
		return nil
	}
	cols, rows := b.Dx()/blockW, b.Dy()/blockH
	if cols == 0 || rows == 0 {
		return nil
	}

	gray := image.NewGray(image.Rect(0, 0, cols, rows))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, b, xdraw.Src, nil)

	lines := make([]string, rows)
	buf := make([]byte, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			lum := int(gray.GrayAt(x, y).Y)
			buf[x] = ArtRamp[lum*(len(ArtRamp)-1)/255]
		}
		lines[y] = string(buf)
	}
	return lines
}

// LoadArt: 파일을 읽어 ArtLines로 바꾼다.
func LoadArt(path string) ([]string, error) {
	img, err := font.Open(path)
	if err != nil {
		return nil, err
	}
	return ArtLines(img, ArtBlockWidth, ArtBlockHeight), nil
}

// DrawLines: 줄마다 커서를 x로 되돌리고 y를 LineHeight만큼 내린다.
// 디스패처는 y를 움직이지 않으므로 줄바꿈은 여기서 한다.
// 실패한 줄이 있으면 그 줄부터 그리지 않는다.
func (r *Renderer) DrawLines(sink Sink, lines []string, x, y int, ink, bg screen.Color) error {
	for i, line := range lines {
		if _, err := r.DrawText(sink, line, x, y+i*LineHeight, ink, bg); err != nil {
			return err
		}
	}
	return nil
}
