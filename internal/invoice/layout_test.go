package invoice

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/product"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
)

// recordingRenderer captures drawing calls so layout decisions can be
// asserted without producing a document.
type recordingRenderer struct {
	ops   []string
	pages int
	size  float64
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{pages: 1, size: 12}
}

func (r *recordingRenderer) AddPage() {
	r.pages++
	r.ops = append(r.ops, "addpage")
}

func (r *recordingRenderer) PageSize() (float64, float64) { return 210, 297 }

func (r *recordingRenderer) SetFont(style string, size float64) {
	r.size = size
	r.ops = append(r.ops, fmt.Sprintf("font %s %.1f", style, size))
}

func (r *recordingRenderer) TextWidth(s string) float64 {
	return float64(len(s)) * r.size * 0.18
}

func (r *recordingRenderer) Text(x, y float64, s string) {
	r.ops = append(r.ops, fmt.Sprintf("text %.1f %.1f %s", x, y, s))
}

func (r *recordingRenderer) TextCenter(x, y float64, s string) {
	r.ops = append(r.ops, fmt.Sprintf("center %.1f %.1f %s", x, y, s))
}

func (r *recordingRenderer) TextRight(x, y float64, s string) {
	r.ops = append(r.ops, fmt.Sprintf("right %.1f %.1f %s", x, y, s))
}

func (r *recordingRenderer) SplitText(s string, w float64) []string {
	if r.TextWidth(s) <= w {
		return []string{s}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if r.TextWidth(candidate) > w && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func (r *recordingRenderer) SetLineWidth(w float64) {
	r.ops = append(r.ops, fmt.Sprintf("linewidth %.2f", w))
}

func (r *recordingRenderer) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, fmt.Sprintf("line %.1f %.1f %.1f %.1f", x1, y1, x2, y2))
}

func (r *recordingRenderer) Rect(x, y, w, h float64) {
	r.ops = append(r.ops, fmt.Sprintf("rect %.1f %.1f %.1f %.1f", x, y, w, h))
}

func (r *recordingRenderer) DrawTable(x, y float64, t Table) float64 {
	for _, col := range t.Columns {
		r.ops = append(r.ops, "tablecol "+col.Header)
	}
	for _, row := range t.Rows {
		r.ops = append(r.ops, "tablerow "+strings.Join(row, "|"))
	}
	return y + 7 + float64(len(t.Rows))*6
}

func (r *recordingRenderer) Output(io.Writer) error { return nil }

func (r *recordingRenderer) contains(substr string) bool {
	for _, op := range r.ops {
		if strings.Contains(op, substr) {
			return true
		}
	}
	return false
}

func testSeller() billing.BusinessInfo {
	seller := billing.Seller
	seller.GSTIN = "27ABCDE1234F1Z5"
	seller.PAN = "ABCDE1234F"
	seller.BankName = "State Bank of India"
	seller.AccountHolderName = "Sai Siddha Furniture Works"
	seller.AccountNumber = "00000012345"
	seller.IFSCCode = "SBIN0000001"
	return seller
}

func testSale(t *testing.T, itemCount int, gst bool) *sale.Sale {
	t.Helper()

	p, err := product.NewProduct("Industrial Pallet 48x40", "Industrial Wooden Pallets",
		product.WoodTypeJungle, 12, 12, 12, 500, 1000, 10, "")
	if err != nil {
		t.Fatalf("NewProduct() unexpected error: %v", err)
	}

	var items []sale.Item
	for i := 0; i < itemCount; i++ {
		item, err := sale.NewItem(p, 2)
		if err != nil {
			t.Fatalf("NewItem() unexpected error: %v", err)
		}
		items = append(items, item)
	}

	in := sale.Input{
		Customer: sale.Customer{
			Name:      "Ravi Traders",
			Phone:     "9876543210",
			Address:   "Plot 12, MIDC Industrial Area, Nashik, Maharashtra",
			GSTIN:     "27ZYXWV9876K1Z1",
			State:     "Maharashtra",
			StateCode: "27",
		},
		Items:         items,
		GSTEnabled:    gst,
		GSTRate:       18,
		PlaceOfSupply: "Maharashtra",
		PaymentMode:   sale.PaymentModePartial,
		PaymentMethod: sale.PaymentMethodNEFT,
		AmountPaid:    500,
	}

	s, err := sale.NewSale(in)
	if err != nil {
		t.Fatalf("NewSale() unexpected error: %v", err)
	}
	s.InvoiceNumber = "SSF26020001"
	return s
}

func TestGenerateIsDeterministic(t *testing.T) {
	s := testSale(t, 2, true)
	seller := testSeller()

	first := newRecordingRenderer()
	Generate(first, s, seller)
	second := newRecordingRenderer()
	Generate(second, s, seller)

	if len(first.ops) != len(second.ops) {
		t.Fatalf("op counts differ: %d vs %d", len(first.ops), len(second.ops))
	}
	for i := range first.ops {
		if first.ops[i] != second.ops[i] {
			t.Fatalf("op %d differs: %q vs %q", i, first.ops[i], second.ops[i])
		}
	}
}

func TestGenerateGSTInvoice(t *testing.T) {
	s := testSale(t, 1, true)
	r := newRecordingRenderer()
	Generate(r, s, testSeller())

	for _, want := range []string{
		"GST INVOICE",
		"Invoice No: SSF26020001",
		"Place of Supply: Maharashtra",
		"tablecol HSN",
		"tablecol Taxable Value",
		"GSTIN: 27ABCDE1234F1Z5",
		"GSTIN: 27ZYXWV9876K1Z1",
		"CGST @ 9%:",
		"SGST @ 9%:",
		"Gross Invoice Value:",
		"Bank Details:",
		"IFSC Code: SBIN0000001",
		"PAN: ABCDE1234F",
		"We hereby certify",
		"Rupees ",
		"Payment Type: Partial Payment",
		"Terms & Conditions:",
		"Company Stamp",
	} {
		if !r.contains(want) {
			t.Errorf("GST invoice missing %q", want)
		}
	}

	if r.contains("tablecol Dimensions") {
		t.Error("GST invoice should not have a Dimensions column")
	}
	if r.pages != 1 {
		t.Errorf("pages = %d, want 1", r.pages)
	}
}

func TestGeneratePlainInvoice(t *testing.T) {
	s := testSale(t, 1, false)
	r := newRecordingRenderer()
	Generate(r, s, testSeller())

	if !r.contains("center 105.0 18.0 INVOICE") {
		t.Error("plain invoice missing centered INVOICE title")
	}
	if !r.contains("tablecol Dimensions") {
		t.Error("plain invoice missing Dimensions column")
	}
	if !r.contains("Gross Total:") {
		t.Error("plain invoice missing Gross Total label")
	}

	for _, forbidden := range []string{
		"GST INVOICE",
		"tablecol HSN",
		"Bank Details:",
		"We hereby certify",
		"CGST",
		"PAN:",
	} {
		if r.contains(forbidden) {
			t.Errorf("plain invoice should not contain %q", forbidden)
		}
	}
}

func TestGenerateInterStateShowsIGST(t *testing.T) {
	s := testSale(t, 1, true)
	s.IsInterState = true
	s.IGSTAmount = s.GSTAmount
	s.CGSTAmount = 0
	s.SGSTAmount = 0

	r := newRecordingRenderer()
	Generate(r, s, testSeller())

	if !r.contains("IGST @ 18%:") {
		t.Error("inter-state invoice missing IGST line")
	}
	if r.contains("CGST") || r.contains("SGST") {
		t.Error("inter-state invoice should not show CGST/SGST lines")
	}
}

func TestGenerateFooterBreaksToNewPage(t *testing.T) {
	s := testSale(t, 40, true)
	r := newRecordingRenderer()
	Generate(r, s, testSeller())

	if r.pages < 2 {
		t.Errorf("pages = %d, want a page break before the footer on a long invoice", r.pages)
	}
}

func TestFilename(t *testing.T) {
	s := testSale(t, 1, true)
	if got := Filename(s); got != "Invoice_SSF26020001.pdf" {
		t.Errorf("Filename() = %q, want %q", got, "Invoice_SSF26020001.pdf")
	}
}
