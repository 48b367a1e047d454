package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/flowerhill/swimreports/internal/domain/besttimes"
	"github.com/flowerhill/swimreports/internal/domain/model"
)

// Best-times report page layout, in millimeters.
const (
	reportLeftEdge   = 10.0
	reportRightEdge  = 205.0
	reportTopEdge    = 30.0
	reportBottomEdge = 260.0

	headerPad    = 5.0
	headerHeight = 10.0
	footerPad    = 5.0
	footerHeight = 10.0

	columnCount = 3
	columnPad   = 2.0
	timeWidth   = 12.0

	ageGroupHeight = 8.0
	eventHeight    = 5.0
	swimmerHeight  = 3.5

	ageGroupIndent = columnPad
	eventIndent    = ageGroupIndent + 5
	swimmerIndent  = eventIndent + 5

	ageGroupPad = 3.0
	eventPad    = 2.0
	contPad     = 2.0

	swimmerFontSize = 9.0
)

// BestTimesReport renders the season ranking report: three flowing columns
// of age-group sections, each event's swimmers fastest first.
type BestTimesReport struct {
	title string
}

// NewBestTimesReport creates a report renderer with the given page title.
func NewBestTimesReport(title string) *BestTimesReport {
	return &BestTimesReport{title: title}
}

// RenderBestTimes writes the report to dst as a PDF.
func (b *BestTimesReport) RenderBestTimes(_ context.Context, sections []besttimes.Section, dst string) error {
	doc := fpdf.New("P", "mm", pageFormat, "")
	doc.SetAutoPageBreak(false, 0)

	doc.SetHeaderFunc(func() {
		doc.SetFont("Times", "B", 16)
		doc.SetY(headerPad + headerHeight)
		doc.CellFormat(0, headerHeight, b.title, "", 0, "C", false, 0, "")
	})
	doc.SetFooterFunc(func() {
		now := time.Now().Format("Monday January 2, 2006  at  3:04 PM")
		doc.SetFont("Times", "", 12)
		doc.SetY(-footerPad - footerHeight)
		doc.CellFormat(0, footerHeight, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "R", false, 0, "")
		doc.SetY(-footerPad - footerHeight)
		doc.CellFormat(0, footerHeight, "Generated: "+now, "", 0, "", false, 0, "")
	})

	colWidth := float64(int(reportRightEdge-reportLeftEdge) / columnCount)

	addPage(doc, colWidth, "")

	col := 0
	x := reportLeftEdge
	y := reportTopEdge
	for _, section := range sections {
		if len(section.Events) == 0 {
			continue
		}

		// jump to the next column/page if the group header plus its first
		// event would not fit
		required := ageGroupHeight + eventHeight + eventPad +
			float64(len(section.Events[0].Swims))*swimmerHeight
		if y+required > reportBottomEdge {
			col, x, y = nextColumn(doc, col, x, colWidth, "")
		}

		doc.SetFont("Times", "B", 12)
		doc.SetXY(x+ageGroupIndent, y)
		doc.CellFormat(colWidth-ageGroupIndent, ageGroupHeight, section.AgeGroup, "", 0, "", false, 0, "")
		y += ageGroupHeight

		for _, ranking := range section.Events {
			required := eventHeight + eventPad + float64(len(ranking.Swims))*swimmerHeight
			if y+required > reportBottomEdge {
				col, x, y = nextColumn(doc, col, x, colWidth, section.AgeGroup)
				if col == 0 {
					y += ageGroupHeight
				}
			}

			doc.SetFont("Times", "B", 10)
			doc.SetXY(x+eventIndent, y)
			doc.CellFormat(colWidth-eventIndent, eventHeight, ranking.Event, "", 0, "", false, 0, "")
			y += eventHeight

			for _, swim := range ranking.Swims {
				drawSwimmer(doc, swim, x, y, colWidth)
				y += swimmerHeight
			}
			y += eventPad
		}
		y += ageGroupPad
	}

	if err := doc.OutputFileAndClose(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// nextColumn advances to the next column, starting a fresh page (with the
// continued age group noted) after the last one.
func nextColumn(doc *fpdf.Fpdf, col int, x, colWidth float64, contGroup string) (int, float64, float64) {
	col++
	x += colWidth
	if col >= columnCount {
		addPage(doc, colWidth, contGroup)
		col = 0
		x = reportLeftEdge
	}
	return col, x, reportTopEdge
}

// addPage starts a page with the column separator lines; when an age group
// continues across the page break its name is repeated with a "(cont)" mark.
func addPage(doc *fpdf.Fpdf, colWidth float64, contGroup string) {
	doc.AddPage()

	for i := 1; i < columnCount; i++ {
		x := reportLeftEdge + float64(i)*colWidth
		doc.Line(x, reportTopEdge, x, reportBottomEdge)
	}

	if contGroup != "" {
		doc.SetFont("Times", "B", 12)
		doc.SetXY(reportLeftEdge+ageGroupIndent, reportTopEdge)
		doc.CellFormat(colWidth-ageGroupIndent, ageGroupHeight, contGroup, "", 0, "", false, 0, "")

		dx := doc.GetStringWidth(contGroup) + contPad
		doc.SetX(reportLeftEdge + ageGroupIndent + dx)
		doc.SetFont("Times", "I", 12)
		doc.CellFormat(colWidth-ageGroupIndent-dx, ageGroupHeight, "(cont)", "", 0, "", false, 0, "")
	}
}

// drawSwimmer prints one ranked swimmer, shrinking the name font when it
// would overrun the time column.
func drawSwimmer(doc *fpdf.Fpdf, swim besttimes.Swim, x, y, colWidth float64) {
	doc.SetFont("Times", "", swimmerFontSize)
	nameWidth := colWidth - (swimmerIndent + timeWidth + cellPad + columnPad)
	if actual := doc.GetStringWidth(swim.Swimmer); actual > nameWidth {
		doc.SetFont("Times", "", swimmerFontSize*nameWidth/actual)
	}
	doc.SetXY(x+swimmerIndent, y)
	doc.CellFormat(nameWidth, swimmerHeight, swim.Swimmer, "", 0, "", false, 0, "")

	doc.SetFont("Times", "", swimmerFontSize)
	doc.SetX(x + colWidth - timeWidth - columnPad)
	doc.CellFormat(timeWidth, swimmerHeight, model.FormatTime(swim.Time), "", 0, "R", false, 0, "")
}
