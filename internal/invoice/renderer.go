package invoice

import "io"

// Font styles understood by the renderer.
const (
	FontNormal = ""
	FontBold   = "B"
	FontItalic = "I"
)

// Cell alignments understood by the renderer.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Column describes one table column.
type Column struct {
	Header string
	Width  float64
	Align  string
}

// Table is a bordered grid with a header row.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// Renderer is the drawing capability an invoice layout writes into. All
// coordinates and sizes are in millimeters; text calls position the baseline.
type Renderer interface {
	// AddPage starts a new page
	AddPage()

	// PageSize returns the page width and height
	PageSize() (width, height float64)

	// SetFont selects the style and size for subsequent text
	SetFont(style string, size float64)

	// TextWidth measures a string in the current font
	TextWidth(s string) float64

	// Text draws left-aligned text at (x, y)
	Text(x, y float64, s string)

	// TextCenter draws text centered on x
	TextCenter(x, y float64, s string)

	// TextRight draws text ending at x
	TextRight(x, y float64, s string)

	// SplitText wraps a string into lines no wider than w
	SplitText(s string, w float64) []string

	// SetLineWidth selects the stroke width for lines and rectangles
	SetLineWidth(w float64)

	// Line draws a line from (x1, y1) to (x2, y2)
	Line(x1, y1, x2, y2 float64)

	// Rect draws an unfilled rectangle
	Rect(x, y, w, h float64)

	// DrawTable renders a grid starting at (x, y) and returns the y below it,
	// breaking onto new pages as needed
	DrawTable(x, y float64, t Table) float64

	// Output writes the finished document
	Output(w io.Writer) error
}
