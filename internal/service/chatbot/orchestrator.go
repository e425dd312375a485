package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

// searchAugmentLimit caps how much of the search digest is appended to the
// conversational prompt.
const searchAugmentLimit = 1000

// noContext is the context string for a state with no trip details yet.
const noContext = "No specific travel context"

// searchKeywords flags messages that need live data. Substring matching is a
// deliberate heuristic, not a model-driven classifier.
var searchKeywords = []string{
	"current", "latest", "today", "price", "cost", "booking",
	"available", "weather", "flights", "hotels", "trains", "bus", "cab",
}

// WebSearcher produces a source-tagged digest for a query.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string) string
}

// Generator produces free text from a prompt.
type Generator interface {
	Available() bool
	Generate(ctx context.Context, prompt string) string
}

// Orchestrator composes chat replies: conversational context from the travel
// state, optional live-search augmentation, then a single generator call.
type Orchestrator struct {
	searcher WebSearcher
	llm      Generator
}

// New wires the orchestrator.
func New(searcher WebSearcher, llm Generator) *Orchestrator {
	return &Orchestrator{searcher: searcher, llm: llm}
}

// Respond builds the augmented prompt for the user message and returns the
// generated reply. It never fails: with the backend offline it returns a
// fixed general-advice message. Updating the conversation history is the
// caller's responsibility.
func (o *Orchestrator) Respond(ctx context.Context, userMessage string, state travel.TravelState) string {
	prompt := fmt.Sprintf(
		"You are a helpful travel assistant. Current travel context: %s. User Message: %s. Provide a helpful, conversational response. If you need current information like prices or availability, I will provide it.",
		buildContext(state), userMessage)

	if NeedsSearch(userMessage) {
		digest := o.searcher.SearchWeb(ctx, userMessage)
		if len(digest) > searchAugmentLimit {
			digest = digest[:searchAugmentLimit]
		}
		prompt += fmt.Sprintf("\n\nCurrent Information from Web Search:\n%s", digest)
	}

	if !o.llm.Available() {
		return fmt.Sprintf("I can provide general advice about '%s'. For specific, live data, my AI core is currently offline.", userMessage)
	}

	return o.llm.Generate(ctx, prompt)
}

// NeedsSearch reports whether the message asks for live data.
func NeedsSearch(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range searchKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func buildContext(state travel.TravelState) string {
	var parts []string
	if state.DestinationLocation != "" {
		parts = append(parts, "Destination: "+state.DestinationLocation)
	}
	if state.DepartureLocation != "" {
		parts = append(parts, "Departure: "+state.DepartureLocation)
	}
	if state.TravelDates != nil {
		parts = append(parts, fmt.Sprintf("Dates: %s to %s", state.TravelDates.Departure, state.TravelDates.Return))
	}
	if len(parts) == 0 {
		return noContext
	}
	return strings.Join(parts, "; ")
}
