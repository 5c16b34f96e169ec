package prompts

import (
	"strings"
	"testing"
)

func TestBuildEmbedsStory(t *testing.T) {
	t.Parallel()
	story := "A lighthouse keeper finds a message in a bottle."
	kinds := []string{KindScreenplay, KindCharacters, KindSoundDesign, KindScriptBreakdown, KindShotList}
	for _, kind := range kinds {
		kind := kind
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			instruction, err := Build(kind, story)
			if err != nil {
				t.Fatalf("Build(%q) returned error: %v", kind, err)
			}
			if !strings.Contains(instruction, story) {
				t.Fatalf("instruction for %q does not contain the story", kind)
			}
		})
	}
}

func TestBuildTemplatesAreDistinct(t *testing.T) {
	t.Parallel()
	story := "story"
	seen := map[string]string{}
	for _, kind := range []string{KindScreenplay, KindCharacters, KindSoundDesign, KindScriptBreakdown, KindShotList} {
		instruction, err := Build(kind, story)
		if err != nil {
			t.Fatalf("Build(%q) returned error: %v", kind, err)
		}
		for prior, text := range seen {
			if text == instruction {
				t.Fatalf("kinds %q and %q share one template", prior, kind)
			}
		}
		seen[kind] = instruction
	}
}

func TestBuildStructuralContracts(t *testing.T) {
	t.Parallel()
	cases := []struct {
		kind string
		want []string
	}{
		{KindScreenplay, []string{"Scene headings MUST be in ALL CAPS", "Setup, Confrontation, Resolution"}},
		{KindCharacters, []string{"SUGGESTED CASTING TYPE", "CHARACTER ARC"}},
		{KindSoundDesign, []string{"OVERALL SONIC PALETTE", "LEITMOTIFS", "SILENCE USAGE"}},
		{KindScriptBreakdown, []string{"CAST REQUIREMENTS", "MASTER PROPS LIST", "ESTIMATED SHOOT TIME"}},
		{KindShotList, []string{"SHOT NUMBER", "SCENE REFERENCE", "CAMERA ANGLE", "LENS SUGGESTION", "LIGHTING MOOD", "ESTIMATED DURATION"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.kind, func(t *testing.T) {
			t.Parallel()
			instruction, err := Build(tc.kind, "story")
			if err != nil {
				t.Fatalf("Build returned error: %v", err)
			}
			for _, fragment := range tc.want {
				if !strings.Contains(instruction, fragment) {
					t.Fatalf("instruction for %q missing %q", tc.kind, fragment)
				}
			}
		})
	}
}

func TestBuildUnknownKind(t *testing.T) {
	t.Parallel()
	if _, err := Build("poster", "story"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestBuildImagePrompt(t *testing.T) {
	t.Parallel()
	shot := "Shot 4: ECU of trembling hands holding the bottle."
	instruction := BuildImagePrompt(shot)
	if !strings.Contains(instruction, shot) {
		t.Fatalf("instruction missing shot description")
	}
	if !strings.Contains(instruction, imagePromptClosing) {
		t.Fatalf("instruction missing closing style directive")
	}
	if !strings.Contains(instruction, "Output ONLY the final image prompt") {
		t.Fatalf("instruction missing no-wrapper directive")
	}
}
