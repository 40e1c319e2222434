package invoice

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/billing"
	"github.com/Shreyas-Jangam/SaiSiddha-Furniture-Works/internal/domain/sale"
)

const (
	margin          = 14.0
	summaryBoxWidth = 85.0
	minFontSize     = 5.0
)

// Filename returns the download name for a sale's invoice document.
func Filename(s *sale.Sale) string {
	return fmt.Sprintf("Invoice_%s.pdf", s.InvoiceNumber)
}

// Generate lays out the invoice for a sale. The document is a deterministic
// function of the sale and seller profile: same inputs, same drawing calls.
func Generate(r Renderer, s *sale.Sale, seller billing.BusinessInfo) {
	pageWidth, pageHeight := r.PageSize()
	gstInvoice := s.GSTEnabled

	// Header
	title := "INVOICE"
	if gstInvoice {
		title = "GST INVOICE"
	}
	r.SetFont(FontBold, 20)
	r.TextCenter(pageWidth/2, 18, title)

	r.SetFont(FontNormal, 9)
	r.Text(margin, 28, "Invoice No: "+s.InvoiceNumber)
	date := s.CreatedAt.Format("02/01/2006")
	r.TextCenter(pageWidth/2, 28, "Date: "+date)
	if gstInvoice && s.PlaceOfSupply != "" {
		r.TextRight(pageWidth-margin, 28, "Place of Supply: "+s.PlaceOfSupply)
	} else {
		r.TextRight(pageWidth-margin, 28, "Date: "+date)
	}

	r.SetLineWidth(0.5)
	r.Line(margin, 32, pageWidth-margin, 32)

	// Seller and buyer boxes
	y := 38.0
	halfWidth := (pageWidth - margin*3) / 2

	r.SetLineWidth(0.3)
	r.Rect(margin, y, halfWidth, 45)

	r.SetFont(FontBold, 9)
	r.Text(margin+3, y+6, "Seller Details:")
	r.SetFont(FontBold, 10)
	r.Text(margin+3, y+13, seller.Name)
	r.SetFont(FontNormal, 8)
	r.Text(margin+3, y+19, seller.Location)
	if gstInvoice && seller.GSTIN != "" {
		r.Text(margin+3, y+25, "GSTIN: "+seller.GSTIN)
	}
	r.Text(margin+3, y+31, fmt.Sprintf("State: %s (%s)", seller.State, seller.StateCode))
	r.Text(margin+3, y+37, fmt.Sprintf("Phone: %s / %s", seller.Phone1, seller.Phone2))
	r.Text(margin+3, y+43, "Email: "+seller.Email)

	buyerX := margin + halfWidth + margin
	r.Rect(buyerX, y, halfWidth, 45)

	r.SetFont(FontBold, 9)
	r.Text(buyerX+3, y+6, "Buyer Details:")
	buyerName := s.Customer.CompanyName
	if buyerName == "" {
		buyerName = s.Customer.Name
	}
	r.SetFont(FontBold, 10)
	r.Text(buyerX+3, y+13, buyerName)

	r.SetFont(FontNormal, 8)
	addressLines := r.SplitText(s.Customer.Address, halfWidth-8)
	buyerY := y + 19
	for _, line := range addressLines {
		r.Text(buyerX+3, buyerY, line)
		buyerY += 4
	}
	if gstInvoice && s.Customer.GSTIN != "" {
		r.Text(buyerX+3, buyerY, "GSTIN: "+s.Customer.GSTIN)
		buyerY += 5
	}
	if s.Customer.State != "" {
		r.Text(buyerX+3, buyerY, fmt.Sprintf("State: %s (%s)", s.Customer.State, s.Customer.StateCode))
		buyerY += 5
	}
	r.Text(buyerX+3, buyerY, "Phone: "+s.Customer.Phone)

	// Line item table
	y += 52
	finalY := r.DrawTable(margin, y, itemTable(s, gstInvoice)) + 8

	// Totals box
	summaryX := pageWidth - margin - summaryBoxWidth
	summaryHeight := 50.0
	if gstInvoice {
		summaryHeight += 20
	}
	if s.TransportEnabled && s.TransportAmount > 0 {
		summaryHeight += 8
	}
	if s.AdvanceAmount > 0 {
		summaryHeight += 8
	}
	if s.AmountPaid > 0 {
		summaryHeight += 8
	}
	if s.BalanceDue > 0 {
		summaryHeight += 8
	}

	r.SetLineWidth(0.3)
	r.Rect(summaryX, finalY, summaryBoxWidth, summaryHeight)

	labelX := summaryX + 3
	valueX := summaryX + summaryBoxWidth - 3
	summaryY := finalY + 8

	r.SetFont(FontNormal, 9)
	r.Text(labelX, summaryY, "Total Taxable Value:")
	rightFit(r, valueX, summaryY, 35, FontNormal, 9, money(s.Subtotal))
	summaryY += 8

	if gstInvoice {
		if s.IsInterState {
			r.Text(labelX, summaryY, fmt.Sprintf("IGST @ %d%%:", s.GSTRate))
			rightFit(r, valueX, summaryY, 35, FontNormal, 9, money(s.IGSTAmount))
			summaryY += 8
		} else {
			halfRate := float64(s.GSTRate) / 2
			r.Text(labelX, summaryY, fmt.Sprintf("CGST @ %g%%:", halfRate))
			rightFit(r, valueX, summaryY, 35, FontNormal, 9, money(s.CGSTAmount))
			summaryY += 8
			r.Text(labelX, summaryY, fmt.Sprintf("SGST @ %g%%:", halfRate))
			rightFit(r, valueX, summaryY, 35, FontNormal, 9, money(s.SGSTAmount))
			summaryY += 8
		}
	}

	if s.TransportEnabled && s.TransportAmount > 0 {
		r.Text(labelX, summaryY, "Transport / Vehicle Charges:")
		rightFit(r, valueX, summaryY, 30, FontNormal, 9, money(s.TransportAmount))
		summaryY += 8
	}

	r.SetLineWidth(0.2)
	r.Line(labelX, summaryY-2, valueX, summaryY-2)

	grossLabel := "Gross Total:"
	if gstInvoice {
		grossLabel = "Gross Invoice Value:"
	}
	r.SetFont(FontBold, 9)
	r.Text(labelX, summaryY+2, grossLabel)
	rightFit(r, valueX, summaryY+2, 35, FontBold, 9, money(s.GrandTotal))
	summaryY += 10

	r.SetFont(FontNormal, 9)
	if s.AdvanceAmount > 0 {
		r.Text(labelX, summaryY, "Advance Paid:")
		rightFit(r, valueX, summaryY, 35, FontNormal, 9, "- "+money(s.AdvanceAmount))
		summaryY += 8
	}
	if s.AmountPaid > 0 {
		r.Text(labelX, summaryY, "Amount Paid:")
		rightFit(r, valueX, summaryY, 35, FontNormal, 9, "- "+money(s.AmountPaid))
		summaryY += 8
	}
	if s.BalanceDue > 0 {
		r.SetFont(FontBold, 9)
		r.Text(labelX, summaryY, "Balance Payable:")
		rightFit(r, valueX, summaryY, 35, FontBold, 9, money(s.BalanceDue))
	}

	// Amount in words
	finalY += summaryHeight + 8
	r.SetFont(FontBold, 9)
	r.Text(margin, finalY, "Invoice Amount (in words):")

	r.SetFont(FontNormal, 9)
	words := "Rupees " + billing.AmountInWords(decimal.NewFromFloat(s.GrandTotal).Floor())
	wordLines := r.SplitText(words, pageWidth-margin*2)
	lineY := finalY + 6
	for _, line := range wordLines {
		r.Text(margin, lineY, line)
		lineY += 5
	}
	finalY += 6 + float64(len(wordLines))*5

	// Payment information
	finalY += 6
	r.SetFont(FontBold, 9)
	r.Text(margin, finalY, "Payment Information:")

	r.SetFont(FontNormal, 8)
	finalY += 6
	r.Text(margin, finalY, "Payment Type: "+paymentModeLabel(s.PaymentMode))
	finalY += 5
	r.Text(margin, finalY, "Payment Method: "+string(s.PaymentMethod))

	// Bank details on GST invoices
	if gstInvoice && seller.BankName != "" {
		finalY += 10
		r.SetFont(FontBold, 9)
		r.Text(margin, finalY, "Bank Details:")

		r.SetFont(FontNormal, 8)
		finalY += 6
		r.Text(margin, finalY, "Bank Name: "+seller.BankName)
		finalY += 5
		r.Text(margin, finalY, "Account Holder: "+seller.AccountHolderName)
		finalY += 5
		r.Text(margin, finalY, "Account No: "+seller.AccountNumber)
		finalY += 5
		r.Text(margin, finalY, "IFSC Code: "+seller.IFSCCode)
	}

	// GST declaration
	if gstInvoice {
		finalY += 12
		r.SetFont(FontItalic, 7)
		declaration := "We hereby certify that the particulars given in this invoice are true and correct and that the amount indicated represents the price actually charged and that there is no flow of additional consideration directly or indirectly from the buyer."
		for _, line := range r.SplitText(declaration, pageWidth-margin*2) {
			r.Text(margin, finalY, line)
			finalY += 3.5
		}
	}

	// Terms
	finalY += 8
	r.SetFont(FontBold, 8)
	r.Text(margin, finalY, "Terms & Conditions:")

	finalY += 5
	r.SetFont(FontNormal, 7)
	terms := []string{
		"- Payment processing period: 20-30 days",
		"- Delivery schedule based on confirmed PO",
		"- Transport facility available if required",
		"- Goods once sold will not be taken back",
		"- Any disputes subject to Ratnagiri jurisdiction",
	}
	for _, term := range terms {
		r.Text(margin, finalY, term)
		finalY += 4
	}

	finalY += 2
	r.SetFont(FontItalic, 8)
	r.Text(margin, finalY, `"We believe that while price is forgotten, quality is remembered for a long time."`)

	// Footer, on a fresh page when the body ran long
	footerY := pageHeight - 35
	if finalY > footerY-10 {
		r.AddPage()
	}

	r.SetLineWidth(0.3)
	r.Line(margin, footerY-8, pageWidth-margin, footerY-8)

	if gstInvoice && seller.PAN != "" {
		r.SetFont(FontNormal, 8)
		r.Text(margin, footerY-3, "PAN: "+seller.PAN)
	}

	r.SetFont(FontNormal, 8)
	r.Line(margin, footerY+12, margin+55, footerY+12)
	r.Text(margin, footerY+18, "Authorized Signatory")
	r.SetFont(FontNormal, 7)
	r.Text(margin, footerY+23, "For "+seller.Name)

	r.SetLineWidth(0.3)
	r.Rect(pageWidth-margin-55, footerY-2, 55, 28)
	r.SetFont(FontNormal, 8)
	r.TextCenter(pageWidth-margin-27.5, footerY+12, "Company Stamp")
}

// itemTable builds the line item grid. GST invoices show HSN codes instead
// of dimensions.
func itemTable(s *sale.Sale, gstInvoice bool) Table {
	var t Table
	if gstInvoice {
		t.Columns = []Column{
			{Header: "Sr", Width: 10, Align: AlignCenter},
			{Header: "Product Name", Width: 38, Align: AlignLeft},
			{Header: "HSN", Width: 14, Align: AlignCenter},
			{Header: "Wood Type", Width: 22, Align: AlignLeft},
			{Header: "Qty", Width: 12, Align: AlignCenter},
			{Header: "CFT/Pc", Width: 16, Align: AlignRight},
			{Header: "Total CFT", Width: 18, Align: AlignRight},
			{Header: "Rate", Width: 20, Align: AlignRight},
			{Header: "Taxable Value", Width: 28, Align: AlignRight},
		}
	} else {
		t.Columns = []Column{
			{Header: "No", Width: 10, Align: AlignCenter},
			{Header: "Product Name", Width: 32, Align: AlignLeft},
			{Header: "Wood Type", Width: 20, Align: AlignLeft},
			{Header: "Dimensions", Width: 28, Align: AlignLeft},
			{Header: "Qty", Width: 12, Align: AlignCenter},
			{Header: "CFT/Pc", Width: 16, Align: AlignRight},
			{Header: "Total CFT", Width: 18, Align: AlignRight},
			{Header: "Rate", Width: 20, Align: AlignRight},
			{Header: "Amount", Width: 24, Align: AlignRight},
		}
	}

	for i, item := range s.Items {
		if gstInvoice {
			hsn := item.HSNCode
			if hsn == "" {
				hsn = "4415"
			}
			t.Rows = append(t.Rows, []string{
				fmt.Sprintf("%d", i+1),
				item.ProductName,
				hsn,
				item.WoodType,
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%.3f", item.CftPerPiece),
				fmt.Sprintf("%.3f", item.TotalCft),
				money(item.PricePerPiece),
				money(item.Amount),
			})
		} else {
			t.Rows = append(t.Rows, []string{
				fmt.Sprintf("%d", i+1),
				item.ProductName,
				item.WoodType,
				item.Dimensions,
				fmt.Sprintf("%d", item.Quantity),
				fmt.Sprintf("%.3f", item.CftPerPiece),
				fmt.Sprintf("%.3f", item.TotalCft),
				money(item.PricePerPiece),
				money(item.Amount),
			})
		}
	}
	return t
}

// money renders an amount with the currency prefix used on the document.
// The core PDF fonts have no rupee glyph, so the textual prefix stands in.
func money(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

// paymentModeLabel renders the payment mode for display.
func paymentModeLabel(mode sale.PaymentMode) string {
	switch mode {
	case sale.PaymentModeFull:
		return "Full Payment"
	case sale.PaymentModePartial:
		return "Partial Payment"
	case sale.PaymentModeAdvance:
		return "Advance Payment"
	default:
		return "Payment Pending"
	}
}

// rightFit draws right-aligned text, shrinking the font until it fits maxW,
// then restores the requested size.
func rightFit(r Renderer, x, y, maxW float64, style string, size float64, s string) {
	fitted := size
	r.SetFont(style, fitted)
	for fitted > minFontSize && r.TextWidth(s) > maxW {
		fitted -= 0.5
		r.SetFont(style, fitted)
	}
	r.TextRight(x, y, s)
	if fitted != size {
		r.SetFont(style, size)
	}
}
