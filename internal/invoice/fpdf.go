package invoice

import (
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	tableHeaderHeight = 7.0
	tableRowHeight    = 6.0
	tableBreakMargin  = 25.0
)

// PDFRenderer implements Renderer on top of an A4 portrait fpdf document.
type PDFRenderer struct {
	pdf      *fpdf.Fpdf
	fontSize float64
}

// NewPDFRenderer creates a renderer with the first page already open.
func NewPDFRenderer() *PDFRenderer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return &PDFRenderer{pdf: pdf, fontSize: 10}
}

// AddPage implements Renderer.AddPage
func (r *PDFRenderer) AddPage() {
	r.pdf.AddPage()
}

// PageSize implements Renderer.PageSize
func (r *PDFRenderer) PageSize() (float64, float64) {
	return r.pdf.GetPageSize()
}

// SetFont implements Renderer.SetFont
func (r *PDFRenderer) SetFont(style string, size float64) {
	r.pdf.SetFont("Helvetica", style, size)
	r.fontSize = size
}

// TextWidth implements Renderer.TextWidth
func (r *PDFRenderer) TextWidth(s string) float64 {
	return r.pdf.GetStringWidth(s)
}

// Text implements Renderer.Text
func (r *PDFRenderer) Text(x, y float64, s string) {
	r.pdf.Text(x, y, s)
}

// TextCenter implements Renderer.TextCenter
func (r *PDFRenderer) TextCenter(x, y float64, s string) {
	r.pdf.Text(x-r.pdf.GetStringWidth(s)/2, y, s)
}

// TextRight implements Renderer.TextRight
func (r *PDFRenderer) TextRight(x, y float64, s string) {
	r.pdf.Text(x-r.pdf.GetStringWidth(s), y, s)
}

// SplitText implements Renderer.SplitText
func (r *PDFRenderer) SplitText(s string, w float64) []string {
	return r.pdf.SplitText(s, w)
}

// SetLineWidth implements Renderer.SetLineWidth
func (r *PDFRenderer) SetLineWidth(w float64) {
	r.pdf.SetLineWidth(w)
}

// Line implements Renderer.Line
func (r *PDFRenderer) Line(x1, y1, x2, y2 float64) {
	r.pdf.Line(x1, y1, x2, y2)
}

// Rect implements Renderer.Rect
func (r *PDFRenderer) Rect(x, y, w, h float64) {
	r.pdf.Rect(x, y, w, h, "D")
}

// DrawTable implements Renderer.DrawTable
func (r *PDFRenderer) DrawTable(x, y float64, t Table) float64 {
	_, pageHeight := r.pdf.GetPageSize()

	y = r.drawTableHeader(x, y, t)
	r.pdf.SetLineWidth(0.2)
	r.SetFont(FontNormal, 8)

	for _, row := range t.Rows {
		if y+tableRowHeight > pageHeight-tableBreakMargin {
			r.pdf.AddPage()
			y = r.drawTableHeader(x, 20, t)
			r.pdf.SetLineWidth(0.2)
			r.SetFont(FontNormal, 8)
		}

		cellX := x
		for i, col := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			r.pdf.SetXY(cellX, y)
			r.pdf.CellFormat(col.Width, tableRowHeight, cell, "1", 0, col.Align, false, 0, "")
			cellX += col.Width
		}
		y += tableRowHeight
	}

	return y
}

// Output implements Renderer.Output
func (r *PDFRenderer) Output(w io.Writer) error {
	return r.pdf.Output(w)
}

func (r *PDFRenderer) drawTableHeader(x, y float64, t Table) float64 {
	r.pdf.SetLineWidth(0.3)
	r.pdf.SetFillColor(240, 240, 240)
	r.SetFont(FontBold, 8)

	cellX := x
	for _, col := range t.Columns {
		r.pdf.SetXY(cellX, y)
		r.pdf.CellFormat(col.Width, tableHeaderHeight, col.Header, "1", 0, AlignCenter, true, 0, "")
		cellX += col.Width
	}
	return y + tableHeaderHeight
}
