// Package llm - summarize.go produces the polished Spanish summary of an
// analyzed document.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// maxSummaryInput caps how much document text goes into the prompt.
const maxSummaryInput = 8000

// DocumentSummarizer generates a short Spanish summary of a teaching
// document. It satisfies the pipeline's Summarizer interface.
type DocumentSummarizer struct {
	client Client
}

// NewDocumentSummarizer creates a summarizer backed by the default
// client configuration.
func NewDocumentSummarizer(ctx context.Context, apiKey string) (*DocumentSummarizer, error) {
	client, err := NewClient(ctx, DefaultConfig(), apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create summarizer: %w", err)
	}
	return &DocumentSummarizer{client: client}, nil
}

// Summarize returns a 2-3 sentence Spanish summary of the document.
func (s *DocumentSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if r := []rune(text); len(r) > maxSummaryInput {
		text = string(r[:maxSummaryInput])
	}

	prompt := "Resume en español, en dos o tres frases, de qué trata el siguiente documento docente. " +
		"No inventes información ni añadas opiniones.\n\n\"\"\"\n" + text + "\n\"\"\""

	summary, err := s.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return "", fmt.Errorf("failed to summarize document: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// Close releases the underlying client.
func (s *DocumentSummarizer) Close() error {
	return s.client.Close()
}
