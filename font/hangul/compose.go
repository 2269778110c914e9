package hangul

import (
	"fmt"

	"go_jaso/font"
)

// Compose: 세 아틀라스에서 셀을 하나씩 골라 행 단위 OR로 합친다.
// 어떤 벌을 고를지는 호출자(분해 서비스)가 정한다.
func Compose(set *Set, sel Selector) (font.Cell, error) {
	if err := sel.validate(); err != nil {
		return font.Cell{}, err
	}
	ii, mi, fi := sel.CellIndices()

	planes := []struct {
		atlas *font.Atlas
		index int
	}{
		{set.Initial, ii},
		{set.Medial, mi},
		{set.Final, fi},
	}

	cells := make([]font.Cell, 0, len(planes))
	for _, p := range planes {
		c, err := p.atlas.Lookup(p.index)
		if err != nil {
			return font.Cell{}, fmt.Errorf("%w: %v", ErrSelectorRange, err)
		}
		if c.Width != Width || c.Height() != Height {
			return font.Cell{}, fmt.Errorf("hangul: %s cell %d is %dx%d, want %dx%d",
				p.atlas.Plane().Name, p.index, c.Width, c.Height(), Width, Height)
		}
		cells = append(cells, c)
	}
	return font.Or(cells...), nil
}
