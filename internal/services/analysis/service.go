// Package analysis turns questions about a stock into Markdown reports
// suitable for the chat view and the PDF renderer.
package analysis

import (
	"context"
	"fmt"
	"strings"

	stockgpt "github.com/ryar001/Stock-GPT"
	"github.com/ryar001/Stock-GPT/internal/common"
)

// Kind selects the analysis depth and angle
type Kind string

const (
	KindChat      Kind = "chat"
	KindQuick     Kind = "quick"
	KindDeep      Kind = "deep"
	KindTechnical Kind = "technical"
)

// ValidKind reports whether k names a supported analysis kind
func ValidKind(k Kind) bool {
	switch k {
	case KindChat, KindQuick, KindDeep, KindTechnical:
		return true
	}
	return false
}

// Generator produces model output for a prompt, streaming chunks
// through emit. Implemented by the gemini client.
type Generator interface {
	GenerateContentStream(ctx context.Context, prompt string, emit func(chunk string) error) (string, error)
}

// Request describes one analysis run
type Request struct {
	Ticker   string
	Kind     Kind
	Question string // free-form question, used by KindChat
	// Fundamentals, when present, seed the prompt with fair-value
	// estimates computed locally.
	Fundamentals *stockgpt.Fundamentals
}

// Validate checks the request for usability
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Ticker) == "" {
		return fmt.Errorf("ticker is required")
	}
	if !ValidKind(r.Kind) {
		return fmt.Errorf("unknown analysis kind %q", r.Kind)
	}
	if r.Kind == KindChat && strings.TrimSpace(r.Question) == "" {
		return fmt.Errorf("question is required for chat analysis")
	}
	return nil
}

// Service runs analysis requests against a Generator
type Service struct {
	gen    Generator
	logger *common.Logger
}

// NewService creates an analysis service
func NewService(gen Generator, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{gen: gen, logger: logger}
}

// Analyze streams the generated report through emit and returns the
// complete Markdown once generation finishes. emit may be nil.
func (s *Service) Analyze(ctx context.Context, req Request, emit func(chunk string) error) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	prompt := buildPrompt(req)
	s.logger.Info().
		Str("ticker", req.Ticker).
		Str("kind", string(req.Kind)).
		Msg("Running analysis")

	report, err := s.gen.GenerateContentStream(ctx, prompt, emit)
	if err != nil {
		return "", fmt.Errorf("analysis for %s failed: %w", req.Ticker, err)
	}
	if strings.TrimSpace(report) == "" {
		return "", fmt.Errorf("analysis for %s produced no content", req.Ticker)
	}
	return report, nil
}
