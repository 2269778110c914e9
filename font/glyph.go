package font

// Cell: 스프라이트 시트에서 잘라낸 글리프 한 칸.
// Rows[j]의 (Width-1-i)번째 비트가 켜져 있으면 (i, j) 픽셀이 잉크다.
type Cell struct {
	Width int
	Rows  []uint32
}

// Height: 행(row) 개수 == 글리프 높이
func (c Cell) Height() int {
	return len(c.Rows)
}

// Ink: (i, j) 픽셀이 잉크인지 여부
func (c Cell) Ink(i, j int) bool {
	if i < 0 || i >= c.Width || j < 0 || j >= len(c.Rows) {
		return false
	}
	// 왼쪽으로 i만큼 밀고 최상위 비트를 본다
	return (c.Rows[j]<<uint(i))&(1<<uint(c.Width-1)) != 0
}

// Equal: 폭과 모든 행이 같은지
func (c Cell) Equal(o Cell) bool {
	if c.Width != o.Width || len(c.Rows) != len(o.Rows) {
		return false
	}
	for j := range c.Rows {
		if c.Rows[j] != o.Rows[j] {
			return false
		}
	}
	return true
}

// Or: 같은 크기의 셀을 행 단위로 OR 해서 새 셀을 만든다.
func Or(cells ...Cell) Cell {
	if len(cells) == 0 {
		return Cell{}
	}
	out := Cell{
		Width: cells[0].Width,
		Rows:  make([]uint32, len(cells[0].Rows)),
	}
	for _, c := range cells {
		for j := range out.Rows {
			out.Rows[j] |= c.Rows[j]
		}
	}
	return out
}
