// Package artifacts holds the generated-document model, the fan-out
// orchestrator that produces a full bundle from one story, and the
// session-scoped cache the HTTP layer reads exports from.
package artifacts

import (
	"fmt"

	"scriptoria/internal/prompts"
)

// Kind identifies one of the five creative documents generated per story.
type Kind string

const (
	KindScreenplay      Kind = prompts.KindScreenplay
	KindCharacters      Kind = prompts.KindCharacters
	KindSoundDesign     Kind = prompts.KindSoundDesign
	KindScriptBreakdown Kind = prompts.KindScriptBreakdown
	KindShotList        Kind = prompts.KindShotList
)

var allKinds = [5]Kind{
	KindScreenplay,
	KindCharacters,
	KindSoundDesign,
	KindScriptBreakdown,
	KindShotList,
}

// Kinds returns every artifact kind in generation order.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds[:])
	return out
}

// ParseKind validates a kind identifier coming off the wire.
func ParseKind(s string) (Kind, error) {
	for _, k := range allKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("artifacts: unknown kind %q", s)
}

// GeneratedText is the result of one generation call: either prose or the
// reason it failed. Callers branch on Failed, never on the text itself; the
// human-readable error marker exists only at the export boundary.
type GeneratedText struct {
	Text string
	Err  string
}

// Failed reports whether the generation call behind this value failed.
func (g GeneratedText) Failed() bool {
	return g.Err != ""
}

// Export renders the value as user-facing text, substituting the error
// marker for failed slots so an exported document stays readable.
func (g GeneratedText) Export() string {
	if g.Failed() {
		return "[ERROR] " + g.Err
	}
	return g.Text
}

// Bundle maps every artifact kind to its generated text. After one
// orchestration run all five keys are present; a failed call occupies its
// slot with the failure reason rather than omitting the key.
type Bundle map[Kind]GeneratedText

// Strings flattens the bundle into the wire shape, rendering failed slots
// through the error marker.
func (b Bundle) Strings() map[string]string {
	out := make(map[string]string, len(b))
	for kind, text := range b {
		out[string(kind)] = text.Export()
	}
	return out
}
