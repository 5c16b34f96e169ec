package artifacts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"scriptoria/internal/infra"
	"scriptoria/internal/prompts"
)

// ErrEmptyStory rejects a generation request before any provider call.
var ErrEmptyStory = errors.New("artifacts: story text is required")

// TextGenerator is the single-call contract the orchestrator needs from the
// text-generation provider.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Orchestrator fans one story out into the five artifact generations and
// joins the results into a bundle.
type Orchestrator struct {
	generator TextGenerator
	logger    infra.Logger
}

// NewOrchestrator wires the orchestrator to a text-generation provider.
func NewOrchestrator(generator TextGenerator, logger infra.Logger) *Orchestrator {
	return &Orchestrator{generator: generator, logger: logger}
}

// Generate produces the full five-artifact bundle for a story. The five
// provider calls run concurrently and independently: one call failing (or
// panicking) fills its own slot with the failure reason and leaves the other
// four untouched. Generate itself only fails on an empty story, checked
// before any provider call is made.
func (o *Orchestrator) Generate(ctx context.Context, story string) (Bundle, error) {
	story = strings.TrimSpace(story)
	if story == "" {
		return nil, ErrEmptyStory
	}

	results := make([]GeneratedText, len(allKinds))
	var wg sync.WaitGroup
	for i, kind := range allKinds {
		wg.Add(1)
		go func(slot int, kind Kind) {
			defer wg.Done()
			results[slot] = o.generateOne(ctx, kind, story)
		}(i, kind)
	}
	wg.Wait()

	bundle := make(Bundle, len(allKinds))
	for i, kind := range allKinds {
		bundle[kind] = results[i]
	}
	return bundle, nil
}

// generateOne runs a single branch. A panic inside the branch is captured
// into the slot so it never crosses the join.
func (o *Orchestrator) generateOne(ctx context.Context, kind Kind, story string) (out GeneratedText) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error().Str("kind", string(kind)).Msgf("generation panic: %v", r)
			out = GeneratedText{Err: fmt.Sprintf("generation panic: %v", r)}
		}
	}()

	instruction, err := prompts.Build(string(kind), story)
	if err != nil {
		return GeneratedText{Err: err.Error()}
	}
	text, err := o.generator.Complete(ctx, instruction)
	if err != nil {
		o.logger.Warn().Str("kind", string(kind)).Err(err).Msg("generation call failed")
		return GeneratedText{Err: err.Error()}
	}
	return GeneratedText{Text: text}
}
