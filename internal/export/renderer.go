// Package export converts a generated artifact's text into a downloadable
// document. Three encodings are supported; all of them consume the same
// (title, body) pair and the same paragraph rule: the body is split on
// newlines, blank lines are paragraph breaks, every other line is one
// paragraph.
package export

import (
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format identifies one of the output document encodings.
type Format string

const (
	// FormatText is the plain banner-plus-body encoding.
	FormatText Format = "txt"
	// FormatPDF is the paginated, styled encoding.
	FormatPDF Format = "pdf"
	// FormatDocx is the word-processor encoding.
	FormatDocx Format = "docx"
)

// ErrUnknownFormat rejects an unrecognized format identifier.
var ErrUnknownFormat = errors.New("export: unknown format, use txt, pdf, or docx")

var contentTypes = map[Format]string{
	FormatText: "text/plain; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatDocx: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Document is a named, typed byte payload ready for download.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Render produces the document for one artifact kind. An empty body is
// allowed and yields a document with only the banner and headings.
func Render(kind, body string, format Format) (*Document, error) {
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, ErrUnknownFormat
	}
	title := Title(kind)

	var data []byte
	var err error
	switch format {
	case FormatText:
		data = renderText(title, body)
	case FormatPDF:
		data, err = renderPDF(title, body)
	case FormatDocx:
		data, err = renderDocx(title, body)
	}
	if err != nil {
		return nil, err
	}

	return &Document{
		Filename:    "scriptoria_" + kind + "." + string(format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Title derives the document title from a content-kind identifier:
// "shot_list" becomes "Shot List".
func Title(kind string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(kind, "_", " "))
}

// bodyLines applies the shared splitting rule. Each entry is either a
// trimmed paragraph line or "" for a paragraph break.
func bodyLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.Split(body, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return out
}
