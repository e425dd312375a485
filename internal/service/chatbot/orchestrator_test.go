package chatbot

import (
	"context"
	"strings"
	"testing"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

type recordingSearcher struct {
	calls  int
	digest string
}

func (r *recordingSearcher) SearchWeb(_ context.Context, _ string) string {
	r.calls++
	return r.digest
}

type recordingGenerator struct {
	available  bool
	lastPrompt string
	reply      string
}

func (r *recordingGenerator) Available() bool { return r.available }

func (r *recordingGenerator) Generate(_ context.Context, prompt string) string {
	r.lastPrompt = prompt
	return r.reply
}

func TestNeedsSearch(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"what's the price of a cab", true},
		{"tell me about Pune's history", false},
		{"is the museum AVAILABLE tomorrow", true},
		{"what's the weather in Pune?", true},
		{"recommend a quiet neighbourhood", false},
	}

	for _, tc := range cases {
		if got := NeedsSearch(tc.message); got != tc.want {
			t.Errorf("NeedsSearch(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}

func TestRespondAugmentsSearchNeedingMessages(t *testing.T) {
	searcher := &recordingSearcher{digest: "Source: Tavily\nTitle: Weather\nContent: sunny..."}
	llm := &recordingGenerator{available: true, reply: "It's sunny."}
	o := New(searcher, llm)

	got := o.Respond(context.Background(), "what's the weather in Pune?", travel.TravelState{})

	if got != "It's sunny." {
		t.Fatalf("unexpected reply: %q", got)
	}
	if searcher.calls != 1 {
		t.Fatalf("expected one search call, got %d", searcher.calls)
	}
	if !strings.Contains(llm.lastPrompt, "Current Information from Web Search:") {
		t.Fatalf("expected augmented prompt, got %q", llm.lastPrompt)
	}
}

func TestRespondSkipsSearchForGeneralMessages(t *testing.T) {
	searcher := &recordingSearcher{digest: "d"}
	llm := &recordingGenerator{available: true, reply: "Pune has a rich history."}
	o := New(searcher, llm)

	o.Respond(context.Background(), "tell me about Pune's history", travel.TravelState{})

	if searcher.calls != 0 {
		t.Fatalf("general message must not trigger search, got %d calls", searcher.calls)
	}
	if strings.Contains(llm.lastPrompt, "Current Information from Web Search:") {
		t.Fatal("prompt must not carry search augmentation")
	}
}

func TestRespondTruncatesLongDigest(t *testing.T) {
	searcher := &recordingSearcher{digest: strings.Repeat("x", 1500)}
	llm := &recordingGenerator{available: true, reply: "ok"}
	o := New(searcher, llm)

	o.Respond(context.Background(), "hotel price in Pune", travel.TravelState{})

	idx := strings.Index(llm.lastPrompt, "Web Search:\n")
	if idx < 0 {
		t.Fatalf("augmentation missing: %q", llm.lastPrompt)
	}
	appended := llm.lastPrompt[idx+len("Web Search:\n"):]
	if len(appended) != 1000 {
		t.Fatalf("expected 1000 appended chars, got %d", len(appended))
	}
}

func TestRespondOfflineBackend(t *testing.T) {
	o := New(&recordingSearcher{}, &recordingGenerator{available: false})

	got := o.Respond(context.Background(), "tell me about Pune's history", travel.TravelState{})

	if !strings.Contains(got, "my AI core is currently offline") {
		t.Fatalf("expected offline message, got %q", got)
	}
}

func TestBuildContext(t *testing.T) {
	state := travel.TravelState{
		DestinationLocation: "Mumbai",
		DepartureLocation:   "Pune",
		TravelDates:         &travel.DateRange{Departure: "2024-01-01", Return: "2024-01-03"},
	}

	got := buildContext(state)
	want := "Destination: Mumbai; Departure: Pune; Dates: 2024-01-01 to 2024-01-03"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	if got := buildContext(travel.TravelState{}); got != noContext {
		t.Fatalf("expected no-context sentinel, got %q", got)
	}
}
