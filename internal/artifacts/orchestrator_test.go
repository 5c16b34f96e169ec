package artifacts

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
)

type fakeGenerator struct {
	mu    sync.Mutex
	calls int32
	fn    func(prompt string) (string, error)
}

func (f *fakeGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()
	if fn != nil {
		return fn(prompt)
	}
	return "generated", nil
}

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestGenerateFillsAllFiveKinds(t *testing.T) {
	gen := &fakeGenerator{}
	o := NewOrchestrator(gen, testLogger())

	bundle, err := o.Generate(context.Background(), "a heist on the moon")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(bundle) != 5 {
		t.Fatalf("bundle has %d keys, want 5", len(bundle))
	}
	for _, kind := range Kinds() {
		text, ok := bundle[kind]
		if !ok {
			t.Fatalf("bundle missing kind %q", kind)
		}
		if text.Failed() {
			t.Fatalf("kind %q unexpectedly failed: %s", kind, text.Err)
		}
		if text.Text != "generated" {
			t.Fatalf("kind %q text = %q", kind, text.Text)
		}
	}
	if n := atomic.LoadInt32(&gen.calls); n != 5 {
		t.Fatalf("provider called %d times, want 5", n)
	}
}

func TestGenerateContainsSingleFailure(t *testing.T) {
	gen := &fakeGenerator{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "sound designer") {
			return "", errors.New("upstream exploded")
		}
		return "ok", nil
	}}
	o := NewOrchestrator(gen, testLogger())

	bundle, err := o.Generate(context.Background(), "a heist on the moon")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	failed := bundle[KindSoundDesign]
	if !failed.Failed() {
		t.Fatalf("sound_design slot should carry the failure")
	}
	if !strings.Contains(failed.Err, "upstream exploded") {
		t.Fatalf("failure reason = %q", failed.Err)
	}
	if !strings.HasPrefix(failed.Export(), "[ERROR] ") {
		t.Fatalf("Export() = %q, want error marker", failed.Export())
	}
	for _, kind := range []Kind{KindScreenplay, KindCharacters, KindScriptBreakdown, KindShotList} {
		if bundle[kind].Failed() {
			t.Fatalf("kind %q affected by sibling failure", kind)
		}
		if bundle[kind].Text != "ok" {
			t.Fatalf("kind %q text = %q", kind, bundle[kind].Text)
		}
	}
}

func TestGenerateRecoversBranchPanic(t *testing.T) {
	gen := &fakeGenerator{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "screenwriter") {
			panic("branch blew up")
		}
		return "ok", nil
	}}
	o := NewOrchestrator(gen, testLogger())

	bundle, err := o.Generate(context.Background(), "story")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bundle[KindScreenplay].Failed() {
		t.Fatalf("panicking branch should fail its own slot")
	}
	if !strings.Contains(bundle[KindScreenplay].Err, "branch blew up") {
		t.Fatalf("Err = %q", bundle[KindScreenplay].Err)
	}
	if bundle[KindShotList].Failed() {
		t.Fatalf("sibling slot affected by panic")
	}
}

func TestGenerateRejectsEmptyStory(t *testing.T) {
	for _, story := range []string{"", "   ", "\n\t"} {
		gen := &fakeGenerator{}
		o := NewOrchestrator(gen, testLogger())
		_, err := o.Generate(context.Background(), story)
		if !errors.Is(err, ErrEmptyStory) {
			t.Fatalf("Generate(%q) err = %v, want ErrEmptyStory", story, err)
		}
		if n := atomic.LoadInt32(&gen.calls); n != 0 {
			t.Fatalf("provider called %d times for invalid input, want 0", n)
		}
	}
}

func TestBundleStringsRendersMarkerAtBoundary(t *testing.T) {
	t.Parallel()
	bundle := Bundle{
		KindScreenplay: {Text: "INT. VAULT - NIGHT"},
		KindCharacters: {Err: "timeout"},
	}
	flat := bundle.Strings()
	if flat["screenplay"] != "INT. VAULT - NIGHT" {
		t.Fatalf("screenplay = %q", flat["screenplay"])
	}
	if flat["characters"] != "[ERROR] timeout" {
		t.Fatalf("characters = %q", flat["characters"])
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()
	if _, err := ParseKind("shot_list"); err != nil {
		t.Fatalf("ParseKind(shot_list) err = %v", err)
	}
	if _, err := ParseKind("poster"); err == nil {
		t.Fatalf("ParseKind(poster) should fail")
	}
}
