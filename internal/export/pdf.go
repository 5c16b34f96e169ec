package export

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"
)

// PDF typesetting constants. Units are points; one inch is 72pt.
const (
	pdfMargin       = 72.0
	pdfTitleSize    = 18.0
	pdfSubtitleSize = 11.0
	pdfBodySize     = 11.0
	pdfBodyLeading  = 16.5
	pdfParaAfter    = 8.0
	pdfBreakGap     = 7.2  // 0.1in gap standing in for a blank line
	pdfTitleSpacer  = 14.4 // 0.2in below the subtitle
)

// renderPDF builds the paginated, styled document: centered banner and
// subtitle, then one left-aligned paragraph per non-blank body line written
// through fpdf's basic-HTML writer.
func renderPDF(title, body string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Times", "B", pdfTitleSize)
	pdf.SetTextColor(0x1a, 0x1a, 0x2e)
	pdf.CellFormat(0, pdfTitleSize+4, "SCRIPTORIA", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Times", "I", pdfSubtitleSize)
	pdf.SetTextColor(0x55, 0x55, 0x55)
	pdf.CellFormat(0, pdfSubtitleSize+3, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(pdfTitleSpacer)

	pdf.SetFont("Times", "", pdfBodySize)
	pdf.SetTextColor(0, 0, 0)
	html := pdf.HTMLBasicNew()
	for _, line := range bodyLines(body) {
		if line == "" {
			pdf.Ln(pdfBreakGap)
			continue
		}
		html.Write(pdfBodyLeading, escapeMarkup(tr(line)))
		pdf.Ln(pdfBodyLeading + pdfParaAfter)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeMarkup neutralizes the three markup metacharacters before a
// paragraph reaches the basic-HTML writer, so body content can never be read
// as structural markup. This escaping is specific to the paginated target.
func escapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}
