package field

// FOV: (x, y)에서 반지름 radius 안에 보이는 칸을 Glared/Known으로 표시한다.
// 이전 Glared는 지운다. 벽은 보이지만 그 뒤는 가린다.
func (m *Map) FOV(x, y, radius int) {
	for i := range m.Glared {
		m.Glared[i] = false
	}
	if !m.In(x, y) || radius < 0 {
		return
	}

	r2 := radius * radius
	for ty := y - radius; ty <= y+radius; ty++ {
		for tx := x - radius; tx <= x+radius; tx++ {
			if !m.In(tx, ty) {
				continue
			}
			dx, dy := tx-x, ty-y
			if dx*dx+dy*dy > r2 {
				continue
			}
			if m.lineOfSight(x, y, tx, ty) {
				i := m.Index(tx, ty)
				m.Glared[i] = true
				m.Known[i] = true
			}
		}
	}
}

// lineOfSight: 브레즌햄 직선 위에 (끝점 제외) 벽이 없는지
func (m *Map) lineOfSight(x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	x, y := x0, y0
	for x != x1 || y != y1 {
		if (x != x0 || y != y0) && m.At(x, y) == Wall {
			return false
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
