package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("hf: api key is required")

const (
	defaultBaseURL = "https://api-inference.huggingface.co"

	// DefaultModel is the text-to-image model used when the caller does not
	// pick one explicitly.
	DefaultModel = "stabilityai/stable-diffusion-xl-base-1.0"

	// Image synthesis on the free inference tier routinely takes over a
	// minute while the model warms up.
	defaultTimeout = 120 * time.Second
)

// Options configures the Hugging Face inference client.
type Options struct {
	APIKey         string
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the Hugging Face serverless inference API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceError struct {
	Error string `json:"error"`
}

// NewClient constructs a client with sane defaults and injected dependencies.
// The key must be present; "not configured" is decided by the caller before
// a client is ever built.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// TextToImage renders a prompt into image bytes with the given model. The
// response body is the raw encoded image (PNG on the SDXL route); error
// payloads arrive as JSON and are surfaced with the upstream message.
func (c *Client) TextToImage(ctx context.Context, prompt, model string) ([]byte, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(inferenceRequest{Inputs: prompt}); err != nil {
		return nil, fmt.Errorf("hf: encode request: %w", err)
	}
	endpoint := c.baseURL + "/models/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("hf: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "image/png")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hf: request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, fmt.Errorf("hf: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		var apiErr inferenceError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("hf: status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("hf: status %d", resp.StatusCode)
	}
	if len(body) == 0 {
		return nil, errors.New("hf: empty image payload")
	}
	return body, nil
}
