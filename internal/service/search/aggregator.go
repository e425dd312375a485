package search

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/yatrika/travel-assistant/backend/internal/config"
	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

const (
	// maxDigestResults caps the aggregation; providers beyond the cap are
	// never called.
	maxDigestResults = 3
	// contentLimit truncates each result's content in the digest.
	contentLimit = 500
)

// Provider is a web search backend that may return several hits per query.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]travel.SearchResult, error)
}

// SingleProvider is a backend that contributes at most one hit per query.
type SingleProvider interface {
	Name() string
	Search(ctx context.Context, query string) (travel.SearchResult, error)
}

// Aggregator queries up to three providers in priority order and merges
// their results into a source-tagged digest. The ordering encodes a
// cost/quality tradeoff: best-quality provider first, a cheaper one only to
// pad an under-filled set, the keyless fallback only when nearly empty.
type Aggregator struct {
	primary   Provider
	secondary Provider
	local     SingleProvider
	tavily    *TavilyClient
}

// NewAggregator wires whichever providers the configuration enables. An
// unconfigured provider is simply absent rather than present-but-broken.
func NewAggregator(cfg config.SearchConfig) *Aggregator {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	a := &Aggregator{}
	if c := NewTavilyClient(httpClient, cfg.TavilyAPIKey); c != nil {
		a.primary = c
		a.tavily = c
	}
	if c := NewSerperClient(httpClient, cfg.SerperAPIKey); c != nil {
		a.secondary = c
	}
	if c := NewDuckDuckGoClient(httpClient, cfg.DuckDuckGoEnabled); c != nil {
		a.local = c
	}
	return a
}

// SearchWeb aggregates provider results into a human-readable digest. It
// never fails: a failing provider contributes zero results, and an empty
// aggregation yields a fixed no-results sentinel.
func (a *Aggregator) SearchWeb(ctx context.Context, query string) string {
	var results []travel.SearchResult

	if a.primary != nil {
		hits, err := a.primary.Search(ctx, query)
		if err != nil {
			log.Printf("[search] %s query failed: %v", a.primary.Name(), err)
		} else {
			results = appendCapped(results, hits, maxDigestResults)
		}
	}

	if len(results) < maxDigestResults && a.secondary != nil {
		hits, err := a.secondary.Search(ctx, query)
		if err != nil {
			log.Printf("[search] %s query failed: %v", a.secondary.Name(), err)
		} else {
			results = appendCapped(results, hits, len(results)+maxDigestResults)
		}
	}

	if len(results) < 2 && a.local != nil {
		hit, err := a.local.Search(ctx, query)
		if err != nil {
			log.Printf("[search] %s query failed: %v", a.local.Name(), err)
		} else {
			results = append(results, hit)
		}
	}

	if len(results) == 0 {
		return fmt.Sprintf("No search results found for: %s.", query)
	}

	blocks := lo.Map(results, func(r travel.SearchResult, _ int) string {
		return fmt.Sprintf("Source: %s\nTitle: %s\nContent: %s...", r.Source, r.Title, truncate(r.Content, contentLimit))
	})
	return strings.Join(blocks, "\n\n")
}

// Advanced runs an advanced-depth query against the primary provider. ok is
// false when that capability is not configured.
func (a *Aggregator) Advanced(ctx context.Context, query string, maxResults int) ([]travel.SearchResult, bool) {
	if a.tavily == nil {
		return nil, false
	}
	hits, err := a.tavily.SearchAdvanced(ctx, query, maxResults)
	if err != nil {
		log.Printf("[search] advanced %s query failed: %v", a.tavily.Name(), err)
		return nil, false
	}
	return hits, true
}

func appendCapped(dst, src []travel.SearchResult, limit int) []travel.SearchResult {
	for _, r := range src {
		if len(dst) >= limit {
			break
		}
		dst = append(dst, r)
	}
	return dst
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
