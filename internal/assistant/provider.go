// Package assistant defines the language-model provider behind the team assistant.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks braik-api/internal/assistant Provider

// Request is a single assistant turn.
type Request struct {
	TeamName string
	Role     string
	Mode     string
	Message  string
}

// Completion is the provider reply with its token accounting.
type Completion struct {
	Text             string
	PromptTokens     int64
	CompletionTokens int64
}

// TotalTokens is the raw token count billed for the turn.
func (c Completion) TotalTokens() int64 {
	return c.PromptTokens + c.CompletionTokens
}

// Provider produces assistant completions.
type Provider interface {
	Complete(ctx context.Context, req Request) (Completion, error)
}

// StubProvider is a deterministic Provider for development and tests.
type StubProvider struct {
	// SimulatedDelay is the time to simulate model latency.
	SimulatedDelay time.Duration
}

// NewStubProvider creates a StubProvider with no delay.
func NewStubProvider() *StubProvider {
	return &StubProvider{}
}

var _ Provider = (*StubProvider)(nil)

// Complete echoes a canned reply and estimates tokens at four bytes each.
func (p *StubProvider) Complete(ctx context.Context, req Request) (Completion, error) {
	if p.SimulatedDelay > 0 {
		select {
		case <-ctx.Done():
			return Completion{}, ctx.Err()
		case <-time.After(p.SimulatedDelay):
		}
	}

	reply := fmt.Sprintf("Here is a suggestion for %s: %s", req.TeamName, strings.TrimSpace(req.Message))
	if req.Mode == "suggestion_only" {
		reply += " (suggestion only; actions need a head coach once usage resets)"
	}

	return Completion{
		Text:             reply,
		PromptTokens:     EstimateTokens(req.Message),
		CompletionTokens: EstimateTokens(reply),
	}, nil
}

// EstimateTokens approximates a token count from text length.
func EstimateTokens(text string) int64 {
	n := int64(utf8.RuneCountInString(text))
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}
