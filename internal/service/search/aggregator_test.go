package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

type fakeProvider struct {
	name  string
	hits  []travel.SearchResult
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(_ context.Context, _ string) ([]travel.SearchResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

type fakeSingle struct {
	hit   travel.SearchResult
	err   error
	calls int
}

func (f *fakeSingle) Name() string { return "DuckDuckGo" }

func (f *fakeSingle) Search(_ context.Context, _ string) (travel.SearchResult, error) {
	f.calls++
	if f.err != nil {
		return travel.SearchResult{}, f.err
	}
	return f.hit, nil
}

func result(source, title string) travel.SearchResult {
	return travel.SearchResult{Title: title, Content: "content for " + title, URL: "https://example.com", Source: source}
}

func TestSearchWebNoProvidersReturnsSentinel(t *testing.T) {
	a := &Aggregator{}
	got := a.SearchWeb(context.Background(), "hotels in Pune")
	want := "No search results found for: hotels in Pune."
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestSearchWebAllProvidersFailingReturnsSentinel(t *testing.T) {
	a := &Aggregator{
		primary:   &fakeProvider{name: "Tavily", err: errors.New("boom")},
		secondary: &fakeProvider{name: "Google (Serper)", err: errors.New("boom")},
		local:     &fakeSingle{err: errors.New("boom")},
	}

	got := a.SearchWeb(context.Background(), "q")
	if !strings.HasPrefix(got, "No search results found for:") {
		t.Fatalf("expected sentinel, got %q", got)
	}
	if got == "" {
		t.Fatal("digest must never be empty")
	}
}

func TestSearchWebFullPrimarySkipsOthers(t *testing.T) {
	secondary := &fakeProvider{name: "Google (Serper)", hits: []travel.SearchResult{result("Google (Serper)", "x")}}
	local := &fakeSingle{hit: result("DuckDuckGo", "y")}
	a := &Aggregator{
		primary: &fakeProvider{name: "Tavily", hits: []travel.SearchResult{
			result("Tavily", "a"), result("Tavily", "b"), result("Tavily", "c"),
		}},
		secondary: secondary,
		local:     local,
	}

	digest := a.SearchWeb(context.Background(), "q")

	if secondary.calls != 0 {
		t.Fatalf("secondary should not be called when primary filled the cap, got %d calls", secondary.calls)
	}
	if local.calls != 0 {
		t.Fatalf("local provider should not be called, got %d calls", local.calls)
	}
	if got := strings.Count(digest, "Source: Tavily"); got != 3 {
		t.Fatalf("expected 3 tavily blocks, got %d in %q", got, digest)
	}
}

func TestSearchWebUnderFilledPadsWithSecondary(t *testing.T) {
	secondary := &fakeProvider{name: "Google (Serper)", hits: []travel.SearchResult{
		result("Google (Serper)", "s1"), result("Google (Serper)", "s2"),
	}}
	local := &fakeSingle{hit: result("DuckDuckGo", "d")}
	a := &Aggregator{
		primary:   &fakeProvider{name: "Tavily", hits: []travel.SearchResult{result("Tavily", "t1")}},
		secondary: secondary,
		local:     local,
	}

	digest := a.SearchWeb(context.Background(), "q")

	if secondary.calls != 1 {
		t.Fatalf("expected secondary to pad an under-filled set, got %d calls", secondary.calls)
	}
	if local.calls != 0 {
		t.Fatal("local provider should not be called once two results accumulated")
	}
	if !strings.Contains(digest, "Source: Tavily") || !strings.Contains(digest, "Source: Google (Serper)") {
		t.Fatalf("digest missing sources: %q", digest)
	}
}

func TestSearchWebNearlyEmptyFallsBackToLocal(t *testing.T) {
	local := &fakeSingle{hit: result("DuckDuckGo", "d")}
	a := &Aggregator{
		primary: &fakeProvider{name: "Tavily", hits: []travel.SearchResult{result("Tavily", "t1")}},
		local:   local,
	}

	digest := a.SearchWeb(context.Background(), "q")

	if local.calls != 1 {
		t.Fatalf("expected the local fallback to be consulted, got %d calls", local.calls)
	}
	if !strings.Contains(digest, "Source: DuckDuckGo") {
		t.Fatalf("digest missing fallback block: %q", digest)
	}
}

func TestSearchWebDigestFormat(t *testing.T) {
	long := strings.Repeat("x", 600)
	a := &Aggregator{
		primary: &fakeProvider{name: "Tavily", hits: []travel.SearchResult{
			{Title: "Hotel Deals", Content: long, URL: "https://example.com", Source: "Tavily"},
		}},
	}

	digest := a.SearchWeb(context.Background(), "q")

	want := fmt.Sprintf("Source: Tavily\nTitle: Hotel Deals\nContent: %s...", strings.Repeat("x", 500))
	if digest != want {
		t.Fatalf("unexpected digest:\n%q\nwant:\n%q", digest, want)
	}
}

func TestSearchWebFailingPrimaryStillAggregates(t *testing.T) {
	a := &Aggregator{
		primary:   &fakeProvider{name: "Tavily", err: errors.New("timeout")},
		secondary: &fakeProvider{name: "Google (Serper)", hits: []travel.SearchResult{result("Google (Serper)", "s1")}},
	}

	digest := a.SearchWeb(context.Background(), "q")
	if !strings.Contains(digest, "Source: Google (Serper)") {
		t.Fatalf("expected secondary results despite primary failure: %q", digest)
	}
}
