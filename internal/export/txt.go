package export

import (
	"bytes"
	"strings"
)

const bannerPrefix = "SCRIPTORIA — "

// renderText emits the banner, a separator rule, a blank line, and the body
// verbatim.
func renderText(title, body string) []byte {
	var buf bytes.Buffer
	buf.WriteString(bannerPrefix + strings.ToUpper(title) + "\n")
	buf.WriteString(strings.Repeat("=", 60) + "\n\n")
	buf.WriteString(body)
	return buf.Bytes()
}
