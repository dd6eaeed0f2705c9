package quote

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const logoImageName = "logo"

type Renderer struct {
	logo *Logo
}

// NewRenderer takes an optional logo.
func NewRenderer(logo *Logo) *Renderer {
	return &Renderer{logo: logo}
}

// Render lays the quote out on one or more A4 portrait pages.
func (r *Renderer) Render(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentW := pageW - left - right

	pdf.SetFooterFunc(func() {
		pdf.SetY(pageH - 18)
		pdf.Line(left, pdf.GetY(), pageW-right, pdf.GetY())
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW, 5, tr(Footer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// ── Header ───────────────────────────────────────────────────────────────
	if r.logo != nil {
		pdf.RegisterImageOptionsReader(
			logoImageName,
			fpdf.ImageOptions{ImageType: "PNG"},
			bytes.NewReader(r.logo.png),
		)
		w, h := r.logo.sizeMM(contentW)
		pdf.ImageOptions(logoImageName, left, pdf.GetY(), w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetY(pdf.GetY() + h + 6)
	} else {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(contentW, 10, "ELITE", "", 1, "L", false, 0, "")
		pdf.Ln(4)
	}

	// ── Date and greeting ────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, tr("Fecha: "+doc.DisplayDate()), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(contentW, 6, tr(doc.Greeting), "", "L", false)
	pdf.Ln(6)

	// ── Body ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(contentW, 6, tr(doc.Body), "", "J", false)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("quote: layout: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("quote: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
