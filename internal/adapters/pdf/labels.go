// Package pdf renders the layout engine's output to printable PDF files.
package pdf

import (
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/flowerhill/swimreports/internal/domain/layout"
	"github.com/flowerhill/swimreports/internal/domain/model"
)

// fpdf works in millimeters; Avery publishes label offsets and sizes in
// inches.
const inch = 25.4

// Letter page and Avery 8160 label geometry, in millimeters.
const (
	pageFormat = "Letter"
	pageWidth  = 8.5 * inch
	pageHeight = 11.0 * inch

	leftRightMargin = 0.1825 * inch
	topBottomMargin = 0.5 * inch

	labelWidth  = 2.625 * inch
	labelHeight = 1.0 * inch

	labelTopMargin    = 0.125 * inch
	labelBottomMargin = 0.125 * inch
	labelLeftMargin   = 0.25 * inch
	labelRightMargin  = 0.25 * inch

	dateWidth  = 0.5 * inch
	deltaWidth = 0.5 * inch
	cellPad    = 1.0
)

// LabelSheets renders paginated ribbon labels onto Avery-style sheets.
//
// Each label carries four lines:
//
//	+---------------------------------------------+
//	| Swimmer Name (age)                          |
//	+---------------------------------+-----------+
//	| Event                           | Date      |
//	+---------------------------------+-----------+
//	| Meet Name                                   |
//	+-------------------------------+-------------+
//	| New Best Time                 | Time Drop   |
//	+-------------------------------+-------------+
type LabelSheets struct{}

// NewLabelSheets creates a label sheet renderer.
func NewLabelSheets() *LabelSheets {
	return &LabelSheets{}
}

// RenderLabels writes the pages to dst as a PDF. Blank cells are simply left
// unprinted so the physical template alignment holds.
func (l *LabelSheets) RenderLabels(_ context.Context, pages []layout.Page, dst string) error {
	doc := fpdf.New("P", "mm", pageFormat, "")
	doc.SetAutoPageBreak(false, 0)

	for _, page := range pages {
		doc.AddPage()

		sheet := page.Sheet
		widthGap := gap(pageWidth, leftRightMargin, labelWidth, sheet.Columns)
		heightGap := gap(pageHeight, topBottomMargin, labelHeight, sheet.Rows)

		for row := 0; row < sheet.Rows; row++ {
			for col := 0; col < sheet.Columns; col++ {
				ribbon := page.Cell(row, col)
				if ribbon == nil {
					continue
				}
				x := leftRightMargin + float64(col)*(labelWidth+widthGap) + labelLeftMargin
				y := topBottomMargin + float64(row)*(labelHeight+heightGap) + labelTopMargin
				drawLabel(doc, ribbon, x, y)
			}
		}
	}

	if err := doc.OutputFileAndClose(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// gap computes the even spacing between labels so the grid fills the
// printable area, matching how the sheet product spaces its stickers.
func gap(pageDim, margin, labelDim float64, count int) float64 {
	if count <= 1 {
		return 0
	}
	excess := pageDim - 2*margin - float64(count)*labelDim
	return excess / float64(count-1)
}

func drawLabel(doc *fpdf.Fpdf, r *model.Ribbon, x, y float64) {
	lineHeight := (labelHeight - labelTopMargin - labelBottomMargin) / 4
	lineWidth := labelWidth - labelLeftMargin - labelRightMargin

	doc.SetFont("Times", "B", 10)
	doc.SetXY(x, y)
	doc.CellFormat(lineWidth, lineHeight, fmt.Sprintf("%s (%s)", r.AthleteName, r.Age), "", 0, "", false, 0, "")

	y += lineHeight

	doc.SetFont("Times", "", 10)
	doc.SetXY(x, y)
	doc.CellFormat(lineWidth-dateWidth-cellPad, lineHeight, r.Event.String(), "", 0, "", false, 0, "")
	doc.SetX(x + lineWidth - dateWidth)
	doc.CellFormat(dateWidth, lineHeight, r.Meet.Date, "", 0, "", false, 0, "")

	y += lineHeight

	doc.SetXY(x, y)
	doc.CellFormat(lineWidth, lineHeight, r.Meet.Name, "", 0, "", false, 0, "")

	y += lineHeight

	doc.SetFont("Times", "B", 10)
	doc.SetXY(x, y)
	doc.CellFormat(lineWidth-deltaWidth-cellPad, lineHeight, model.FormatTime(r.Time), "", 0, "", false, 0, "")

	// First-ever swims have no prior time to show a drop against.
	if r.PreviousBest != nil {
		doc.SetXY(x+lineWidth-deltaWidth, y)
		doc.CellFormat(deltaWidth, lineHeight, fmt.Sprintf("-%sS", model.FormatTime(r.Drop())), "", 0, "", false, 0, "")
	}
}
