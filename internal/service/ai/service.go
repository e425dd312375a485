package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/yatrika/travel-assistant/backend/internal/config"
)

// Unavailable is returned by every entry point when no generation backend is
// configured. Callers treat it as a graceful degradation, not an error.
const Unavailable = "AI processing not available."

// summarizeLimit truncates raw digests before they are embedded in the
// extraction prompt; excess content is dropped, not chunked.
const summarizeLimit = 2000

// Service adapts the text-generation backend. A disabled service is a valid
// value whose methods return fixed sentinels, so callers never need nil
// checks before use.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the generation chain against the configured model.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile generation chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Disabled returns the explicit unavailable variant, selected at
// configuration time when no credential is present.
func Disabled() *Service {
	return &Service{}
}

// Available reports whether a generation backend is wired up.
func (s *Service) Available() bool {
	return s != nil && s.chain != nil
}

// Generate runs a single-turn prompt against the backend. Failures are
// embedded in the returned text rather than propagated.
func (s *Service) Generate(ctx context.Context, promptText string) string {
	if !s.Available() {
		return Unavailable
	}

	response, err := s.chain.Invoke(ctx, map[string]any{"prompt": promptText})
	if err != nil {
		log.Printf("[ai] generation failed: %v", err)
		return fmt.Sprintf("Error generating response: %v", err)
	}
	if response.Content == "" {
		return "Sorry, I couldn't generate a proper response."
	}
	return response.Content
}

// Summarize extracts a concise summary from raw search results following the
// caller's instruction. Only the first part of the raw text is considered.
func (s *Service) Summarize(ctx context.Context, raw, instruction string) string {
	if !s.Available() {
		return Unavailable
	}

	if len(raw) > summarizeLimit {
		raw = raw[:summarizeLimit]
	}

	promptText := fmt.Sprintf(`Task: Extract CONCISE, ACTIONABLE information from the search results below.
Instructions:
- Focus on specific prices (in INR), names (hotels, airlines, etc.), and booking websites.
- %s
- Format the output clearly using markdown lists.
- Keep the summary under 150 words. Be practical.
Search Results:
%s
Summary:`, instruction, raw)

	return s.Generate(ctx, promptText)
}
