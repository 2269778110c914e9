package font

import (
	"fmt"
	"image"
)

// MaxCellWidth: 한 행을 uint32 하나에 담으므로 32픽셀이 한계
const MaxCellWidth = 32

// Extract: img의 (x, y)에서 w*h 영역을 읽어 행 비트마스크로 변환한다.
// 알파가 0이 아닌 픽셀은 잉크, 0이면 배경.
// 영역이 이미지 밖으로 나가면 데이터 계약 위반이므로 panic.
func Extract(img image.Image, x, y, w, h int) Cell {
	if w <= 0 || h <= 0 || w > MaxCellWidth {
		panic(fmt.Sprintf("font: invalid cell size %dx%d", w, h))
	}
	rect := image.Rect(x, y, x+w, y+h)
	if !rect.In(img.Bounds()) {
		panic(fmt.Sprintf("font: cell %v outside image %v", rect, img.Bounds()))
	}

	rows := make([]uint32, h)
	for j := 0; j < h; j++ {
		var acc uint32
		for i := 0; i < w; i++ {
			_, _, _, a := img.At(x+i, y+j).RGBA()
			if a != 0 {
				acc |= 1 << uint(w-1-i)
			}
		}
		rows[j] = acc
	}
	return Cell{Width: w, Rows: rows}
}
