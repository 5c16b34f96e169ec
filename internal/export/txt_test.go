package export

import (
	"strings"
	"testing"
)

func TestRenderTextLayout(t *testing.T) {
	t.Parallel()
	data := string(renderText("Shot List", sampleBody))

	if !strings.HasPrefix(data, "SCRIPTORIA — SHOT LIST\n") {
		t.Fatalf("banner missing or wrong: %q", data[:40])
	}
	if !strings.Contains(data, strings.Repeat("=", 60)+"\n\n") {
		t.Fatalf("separator rule missing")
	}
	if !strings.HasSuffix(data, sampleBody) {
		t.Fatalf("body not verbatim")
	}
}

func TestRenderTextPreservesMetacharacters(t *testing.T) {
	t.Parallel()
	body := "Props: rope & lantern <key prop> as scripted"
	data := string(renderText("Screenplay", body))
	if !strings.Contains(data, body) {
		t.Fatalf("metacharacters not preserved verbatim: %q", data)
	}
}
