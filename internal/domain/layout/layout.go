// Package layout orders ribbons for handout and paginates them onto
// fixed-size label sheets.
package layout

import (
	"fmt"
	"sort"

	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Sheet describes the label grid of one physical sheet product.
type Sheet struct {
	Rows    int
	Columns int
}

// Capacity returns the number of label cells per page.
func (s Sheet) Capacity() int {
	return s.Rows * s.Columns
}

// Validate checks the grid dimensions.
func (s Sheet) Validate() error {
	if s.Rows <= 0 || s.Columns <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadGeometry, s.Rows, s.Columns)
	}
	return nil
}

// Page is one sheet worth of labels in row-major order. Cells holds exactly
// Sheet.Capacity entries; trailing cells of a partially filled page are nil
// so the physical template alignment is preserved.
type Page struct {
	Sheet Sheet
	Cells []*model.Ribbon
}

// Cell returns the ribbon at the given row and column, or nil for a blank.
func (p Page) Cell(row, col int) *model.Ribbon {
	return p.Cells[row*p.Sheet.Columns+col]
}

// Order sorts ribbons for handout convenience: athlete name first, then the
// canonical event order. Returns a new slice; the input is left alone.
func Order(ribbons []model.Ribbon) []model.Ribbon {
	out := make([]model.Ribbon, len(ribbons))
	copy(out, ribbons)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AthleteName != out[j].AthleteName {
			return out[i].AthleteName < out[j].AthleteName
		}
		return out[i].Event.Less(out[j].Event)
	})
	return out
}

// Paginate packs ordered ribbons onto pages of the given sheet, left to
// right then top to bottom, page-major. Zero ribbons produce zero pages.
func Paginate(ribbons []model.Ribbon, sheet Sheet) ([]Page, error) {
	if err := sheet.Validate(); err != nil {
		return nil, err
	}

	capacity := sheet.Capacity()
	var pages []Page
	for start := 0; start < len(ribbons); start += capacity {
		cells := make([]*model.Ribbon, capacity)
		for i := 0; i < capacity && start+i < len(ribbons); i++ {
			r := ribbons[start+i]
			cells[i] = &r
		}
		pages = append(pages, Page{Sheet: sheet, Cells: cells})
	}
	return pages, nil
}
