// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/ryar001/Stock-GPT/internal/common"
)

const (
	DefaultModel     = "gemini-2.5-flash"
	DefaultRateLimit = 10 // requests per minute
)

// Client wraps the genai SDK with rate limiting and logging
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithRateLimit caps outgoing requests per minute
func WithRateLimit(perMinute int) ClientOption {
	return func(c *Client) {
		if perMinute > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		limiter: rate.NewLimiter(rate.Limit(float64(DefaultRateLimit)/60.0), 1),
		logger:  common.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Model returns the configured model name
func (c *Client) Model() string {
	return c.model
}

// GenerateContent generates a complete response for a prompt
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	c.logger.Debug().Str("model", c.model).Msg("Generating content")

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractTextFromResponse(result)
}

// GenerateContentStream generates a response for a prompt, invoking
// emit for each text chunk as it arrives. The accumulated full text is
// returned when the stream ends.
func (c *Client) GenerateContentStream(ctx context.Context, prompt string, emit func(chunk string) error) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	c.logger.Debug().Str("model", c.model).Msg("Generating content stream")

	var full string
	for resp, err := range c.client.Models.GenerateContentStream(ctx, c.model, genai.Text(prompt), nil) {
		if err != nil {
			return full, fmt.Errorf("stream failed: %w", err)
		}
		chunk, err := extractTextFromResponse(resp)
		if err != nil {
			continue // keep-alive chunks carry no text
		}
		full += chunk
		if emit != nil {
			if err := emit(chunk); err != nil {
				return full, fmt.Errorf("emit chunk: %w", err)
			}
		}
	}
	return full, nil
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
