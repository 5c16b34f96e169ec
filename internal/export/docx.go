package export

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// Word document constants. Font sizes are half-points, margins twentieths of
// a point (1440 = one inch).
const (
	docxFont         = "Cambria"
	docxHeadingSize  = 40 // 20pt
	docxSubheadSize  = 28 // 14pt
	docxBodySize     = 22 // 11pt
	docxLineSpacing  = 360
	docxMarginTop    = 1440
	docxMarginBottom = 1440
	docxMarginLeft   = 1800 // 1.25in
	docxMarginRight  = 1800
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>
`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>
`

// renderDocx assembles the OOXML package: a two-level centered heading pair,
// then one paragraph per body line, each carrying an explicit line-spacing
// directive so the visual rhythm matches the paginated target. Blank lines
// become runless paragraphs, keeping the spacing rhythm without text.
func renderDocx(title, body string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", docxDocument(title, body)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("export: create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("export: write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("export: close package: %w", err)
	}
	return buf.Bytes(), nil
}

// docxDocument builds word/document.xml.
func docxDocument(title, body string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeHeading(&b, "SCRIPTORIA", docxHeadingSize)
	writeHeading(&b, title, docxSubheadSize)
	// Spacer between the headings and the body.
	b.WriteString(`<w:p/>`)

	for _, line := range bodyLines(body) {
		writeBodyParagraph(&b, line)
	}

	fmt.Fprintf(&b,
		`<w:sectPr><w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d"/></w:sectPr>`,
		docxMarginTop, docxMarginRight, docxMarginBottom, docxMarginLeft)
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func writeHeading(b *strings.Builder, text string, size int) {
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:b/><w:sz w:val="%d"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		docxFont, docxFont, size, xmlEscape(text))
}

func writeBodyParagraph(b *strings.Builder, line string) {
	fmt.Fprintf(b,
		`<w:p><w:pPr><w:spacing w:line="%d" w:lineRule="auto"/><w:jc w:val="left"/></w:pPr>`,
		docxLineSpacing)
	if line != "" {
		fmt.Fprintf(b,
			`<w:r><w:rPr><w:rFonts w:ascii="%s" w:hAnsi="%s"/><w:sz w:val="%d"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r>`,
			docxFont, docxFont, docxBodySize, xmlEscape(line))
	}
	b.WriteString(`</w:p>`)
}

// xmlEscape encodes text for a w:t node. This is OOXML plumbing, not the
// paginated target's markup rule: the decoded document text stays verbatim.
func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
