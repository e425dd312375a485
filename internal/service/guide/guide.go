package guide

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

// Searcher exposes both the plain digest search and the deeper advanced
// search used to dig up page content.
type Searcher interface {
	SearchWeb(ctx context.Context, query string) string
	Advanced(ctx context.Context, query string, maxResults int) ([]travel.SearchResult, bool)
}

// Summarizer extracts structured output from raw search text.
type Summarizer interface {
	Summarize(ctx context.Context, raw, instruction string) string
}

// Service composes a destination guide: curated video links extracted from
// search results plus an external map link.
type Service struct {
	searcher   Searcher
	summarizer Summarizer
}

// New wires the guide service.
func New(searcher Searcher, summarizer Summarizer) *Service {
	return &Service{searcher: searcher, summarizer: summarizer}
}

// ForCity builds a guide for the destination. The video extraction degrades
// with the rest of the pipeline; the map link is always well-formed.
func (s *Service) ForCity(ctx context.Context, city string) travel.Guide {
	log.Printf("[guide] building guide for %s", city)

	query := fmt.Sprintf("YouTube videos for tourists in %s attractions and food", city)

	var raw string
	if hits, ok := s.searcher.Advanced(ctx, query, 5); ok {
		lines := lo.Map(hits, func(r travel.SearchResult, _ int) string {
			return fmt.Sprintf("URL: %s Content: %s", r.URL, r.Content)
		})
		raw = strings.Join(lines, "\n")
	} else {
		raw = s.searcher.SearchWeb(ctx, query)
	}

	instruction := fmt.Sprintf(`From the provided search results, extract up to 3 real, valid YouTube video URLs for a tourist visiting %s.
- The URL MUST start with 'https://www.youtube.com/watch?v='.
- Do NOT invent or create any URLs.
- If you cannot find any valid YouTube URLs in the results, respond with ONLY the text 'No valid videos found.'
- Format the valid links you find as a markdown list: '- [Title](URL)'`, city)

	return travel.Guide{
		YouTubeLinksMD:  s.summarizer.Summarize(ctx, raw, instruction),
		GoogleEarthLink: "https://earth.google.com/web/search/" + url.QueryEscape(city),
		City:            city,
	}
}
