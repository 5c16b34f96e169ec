package export

import (
	"errors"
	"strings"
	"testing"
)

const sampleBody = "INT. SHED - DAY\nMara pries the crate open.\n\n   \nTHE CRATE is empty."

func nonBlankLines(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()
	if _, err := Render("screenplay", "body", Format("bogus")); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestRenderNamesAndTypes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		format   Format
		filename string
		ctype    string
	}{
		{FormatText, "scriptoria_shot_list.txt", "text/plain; charset=utf-8"},
		{FormatPDF, "scriptoria_shot_list.pdf", "application/pdf"},
		{FormatDocx, "scriptoria_shot_list.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.format), func(t *testing.T) {
			t.Parallel()
			doc, err := Render("shot_list", sampleBody, tc.format)
			if err != nil {
				t.Fatalf("Render returned error: %v", err)
			}
			if doc.Filename != tc.filename {
				t.Fatalf("Filename = %q, want %q", doc.Filename, tc.filename)
			}
			if doc.ContentType != tc.ctype {
				t.Fatalf("ContentType = %q, want %q", doc.ContentType, tc.ctype)
			}
			if len(doc.Data) == 0 {
				t.Fatalf("empty payload")
			}
		})
	}
}

func TestRenderEmptyBody(t *testing.T) {
	t.Parallel()
	for _, format := range []Format{FormatText, FormatPDF, FormatDocx} {
		if _, err := Render("screenplay", "", format); err != nil {
			t.Fatalf("Render(%s) with empty body returned error: %v", format, err)
		}
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind string
		want string
	}{
		{"screenplay", "Screenplay"},
		{"shot_list", "Shot List"},
		{"script_breakdown", "Script Breakdown"},
		{"sound_design", "Sound Design"},
	}
	for _, tc := range cases {
		if got := Title(tc.kind); got != tc.want {
			t.Fatalf("Title(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestBodyLinesSplittingRule(t *testing.T) {
	t.Parallel()
	lines := bodyLines(sampleBody)
	if len(lines) != 5 {
		t.Fatalf("len = %d, want 5", len(lines))
	}
	blanks := 0
	paragraphs := 0
	for _, line := range lines {
		if line == "" {
			blanks++
		} else {
			paragraphs++
		}
	}
	if blanks != 2 {
		t.Fatalf("blanks = %d, want 2 (empty and whitespace-only lines)", blanks)
	}
	if paragraphs != nonBlankLines(sampleBody) {
		t.Fatalf("paragraphs = %d, want %d", paragraphs, nonBlankLines(sampleBody))
	}
	if bodyLines("") != nil {
		t.Fatalf("bodyLines(\"\") should be nil")
	}
}
