// Package imagechain turns a shot description into concept art through a
// strictly ordered two-stage pipeline: the text provider writes a cinematic
// image prompt, then the image provider renders it. The stages never run in
// parallel and nothing is retried.
package imagechain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"scriptoria/internal/infra"
	"scriptoria/internal/prompts"
	"scriptoria/internal/providers/hf"
)

// promptLimit caps the stage-1 prompt handed to the image model, counted in
// characters. Only the derived prompt is truncated, never the shot
// description.
const promptLimit = 900

// ErrEmptyShot rejects a request before any provider call.
var ErrEmptyShot = errors.New("imagechain: shot description is required")

// ErrPromptGeneration marks a stage-1 failure; stage 2 was never attempted.
var ErrPromptGeneration = errors.New("imagechain: prompt generation failed")

// ErrImageGeneration marks a stage-2 failure after credentials were present.
var ErrImageGeneration = errors.New("imagechain: image generation failed")

// SetupSteps is the ordered guidance returned with a NotConfiguredError.
var SetupSteps = []string{
	"Visit https://huggingface.co/settings/tokens",
	`Click "New token" → choose Role: Read → click Create`,
	"Copy the token (it starts with  hf_...)",
	"Open the file  .env  in your project folder",
	"Replace  hf_your_token_here  with your real token",
	"Save the file, then restart the server",
}

// NotConfiguredError is the guided-setup outcome: image credentials are
// absent, which is not a call failure. Callers branch on it separately and
// show the setup steps instead of an error.
type NotConfiguredError struct {
	Steps []string
}

func (e *NotConfiguredError) Error() string {
	return "imagechain: image generation credentials are not configured"
}

// TextGenerator writes the stage-1 cinematic prompt.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator renders the stage-2 image.
type ImageGenerator interface {
	TextToImage(ctx context.Context, prompt, model string) ([]byte, error)
}

// CredentialSource supplies the image-provider key. It is consulted on every
// call so a key added while the process runs takes effect without a restart.
type CredentialSource interface {
	APIKey() string
}

// EnvCredentials reads the Hugging Face key from the environment on each
// call, treating the sample placeholder as unset.
type EnvCredentials struct{}

func (EnvCredentials) APIKey() string {
	key := strings.TrimSpace(os.Getenv("HF_API_KEY"))
	if key == infra.HFKeyPlaceholder {
		return ""
	}
	return key
}

// StaticCredentials wraps a fixed key, mainly for tests and single-shot
// tooling.
type StaticCredentials string

func (s StaticCredentials) APIKey() string {
	key := strings.TrimSpace(string(s))
	if key == infra.HFKeyPlaceholder {
		return ""
	}
	return key
}

// Result is the successful chain outcome. The stage-1 prompt is part of the
// result: it is user-visible alongside the image.
type Result struct {
	Prompt   string
	ImagePNG []byte
}

// Options configures the chain.
type Options struct {
	TextGenerator TextGenerator
	Credentials   CredentialSource
	Model         string
	Logger        infra.Logger

	// NewImageGenerator builds the stage-2 client for a validated key.
	// Defaults to the Hugging Face inference client; tests inject fakes.
	NewImageGenerator func(apiKey string) (ImageGenerator, error)
}

// Chain executes the two-stage pipeline. A successfully constructed image
// client is cached per key; a missing or changed key discards it so the next
// call re-validates from scratch, never memoizing the unconfigured state.
type Chain struct {
	textGen     TextGenerator
	credentials CredentialSource
	model       string
	logger      infra.Logger
	newImageGen func(apiKey string) (ImageGenerator, error)

	mu        sync.Mutex
	cachedKey string
	cachedGen ImageGenerator
}

// NewChain wires the chain.
func NewChain(opts Options) *Chain {
	newImageGen := opts.NewImageGenerator
	if newImageGen == nil {
		newImageGen = func(apiKey string) (ImageGenerator, error) {
			return hf.NewClient(hf.Options{APIKey: apiKey})
		}
	}
	credentials := opts.Credentials
	if credentials == nil {
		credentials = EnvCredentials{}
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = hf.DefaultModel
	}
	return &Chain{
		textGen:     opts.TextGenerator,
		credentials: credentials,
		model:       model,
		logger:      opts.Logger,
		newImageGen: newImageGen,
	}
}

// Synthesize runs the chain for one shot description.
func (c *Chain) Synthesize(ctx context.Context, shotDescription string) (*Result, error) {
	shotDescription = strings.TrimSpace(shotDescription)
	if shotDescription == "" {
		return nil, ErrEmptyShot
	}

	imagePrompt, err := c.textGen.Complete(ctx, prompts.BuildImagePrompt(shotDescription))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPromptGeneration, err)
	}
	truncated := truncateRunes(imagePrompt, promptLimit)

	generator, err := c.imageGenerator()
	if err != nil {
		return nil, err
	}

	image, err := generator.TextToImage(ctx, truncated, c.model)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageGeneration, err)
	}
	return &Result{Prompt: imagePrompt, ImagePNG: image}, nil
}

// truncateRunes caps s at limit characters, never splitting a rune.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

// imageGenerator validates credentials and returns the stage-2 client,
// reusing the cached handle while the key is unchanged.
func (c *Chain) imageGenerator() (ImageGenerator, error) {
	key := c.credentials.APIKey()

	c.mu.Lock()
	defer c.mu.Unlock()
	if key == "" {
		c.cachedKey = ""
		c.cachedGen = nil
		return nil, &NotConfiguredError{Steps: SetupSteps}
	}
	if c.cachedGen != nil && c.cachedKey == key {
		return c.cachedGen, nil
	}
	generator, err := c.newImageGen(key)
	if err != nil {
		c.cachedKey = ""
		c.cachedGen = nil
		return nil, fmt.Errorf("%w: %s", ErrImageGeneration, err)
	}
	c.cachedKey = key
	c.cachedGen = generator
	return generator, nil
}
