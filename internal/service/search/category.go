package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
	"github.com/yatrika/travel-assistant/backend/internal/service/links"
)

// Summarizer turns a raw search digest into a concise, structured extraction.
type Summarizer interface {
	Summarize(ctx context.Context, raw, instruction string) string
}

// Geocoder resolves an address to coordinates for ride-hailing deep links.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (travel.Geocode, bool)
}

// WebSearcher produces a source-tagged digest for a query.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string) string
}

// Service runs the per-category travel searches: each builds a targeted
// query, aggregates the web results, has the summarizer extract the
// actionable parts and attaches booking deep links where they can be built.
type Service struct {
	searcher   WebSearcher
	summarizer Summarizer
	geo        Geocoder
	now        func() time.Time
}

// NewService wires the category searches.
func NewService(searcher WebSearcher, summarizer Summarizer, geo Geocoder) *Service {
	return &Service{
		searcher:   searcher,
		summarizer: summarizer,
		geo:        geo,
		now:        time.Now,
	}
}

// SearchFlights looks up flight options between two cities.
func (s *Service) SearchFlights(ctx context.Context, departure, destination, date string) travel.CategoryResult {
	query := fmt.Sprintf("flights from %s to %s on %s prices booking airlines", departure, destination, dateOrToday(date))
	instruction := fmt.Sprintf("Extract flight info from %s to %s, including airlines, prices, and booking links.", departure, destination)

	result := s.execute(ctx, query, instruction)
	if when, ok := parseDate(date); ok {
		result.BookingLinks = links.ForFlights(departure, destination, when)
	}
	return result
}

// SearchHotels looks up hotel options in a city, optionally narrowed to an
// area and a stay window.
func (s *Service) SearchHotels(ctx context.Context, city, area, checkin, checkout string) travel.CategoryResult {
	location := city
	if area != "" {
		location = fmt.Sprintf("%s, %s", area, city)
	}
	dateInfo := ""
	if checkin != "" && checkout != "" {
		dateInfo = fmt.Sprintf("check-in %s check-out %s", checkin, checkout)
	}
	query := strings.TrimSpace(fmt.Sprintf("hotels in %s booking prices ratings %s", location, dateInfo))
	instruction := fmt.Sprintf("Extract hotel info for %s, including names, ratings, prices, and booking links.", location)

	result := s.execute(ctx, query, instruction)
	in, okIn := parseDate(checkin)
	out, okOut := parseDate(checkout)
	if okIn && okOut {
		result.BookingLinks = links.ForHotels(city, in, out)
	}
	return result
}

// SearchTrains looks up rail options between two cities.
func (s *Service) SearchTrains(ctx context.Context, departure, destination, date string) travel.CategoryResult {
	query := fmt.Sprintf("trains from %s to %s on %s IRCTC seat availability classes price", departure, destination, dateOrToday(date))
	instruction := fmt.Sprintf("Extract train information from %s to %s, including train names/numbers, travel classes (AC, Sleeper), and approximate ticket prices.", departure, destination)

	result := s.execute(ctx, query, instruction)
	if when, ok := parseDate(date); ok {
		result.BookingLinks = links.ForTrains(departure, destination, when)
	}
	return result
}

// SearchBuses looks up intercity bus options.
func (s *Service) SearchBuses(ctx context.Context, departure, destination, date string) travel.CategoryResult {
	query := fmt.Sprintf("bus from %s to %s on %s redbus abhibus price AC sleeper", departure, destination, dateOrToday(date))
	instruction := fmt.Sprintf("Extract bus travel options from %s to %s, including bus operators, types (AC, Sleeper, Seater), and ticket prices.", departure, destination)

	result := s.execute(ctx, query, instruction)
	if when, ok := parseDate(date); ok {
		result.BookingLinks = links.ForBuses(departure, destination, when)
	}
	return result
}

// SearchIntercityCab looks up one-way outstation cab options.
func (s *Service) SearchIntercityCab(ctx context.Context, departure, destination, date string) travel.CategoryResult {
	query := fmt.Sprintf("intercity cab from %s to %s on %s one way price booking", departure, destination, dateOrToday(date))
	instruction := fmt.Sprintf("Extract intercity cab options from %s to %s, including providers (Ola, Uber, local), car types, and estimated fares.", departure, destination)

	result := s.execute(ctx, query, instruction)
	result.BookingLinks = s.cabLinks(ctx, departure, destination, links.ForIntercityCabs)
	return result
}

// SearchLocalCab looks up in-city cab and auto fares.
func (s *Service) SearchLocalCab(ctx context.Context, departure, destination string) travel.CategoryResult {
	query := fmt.Sprintf("local cab auto rickshaw from %s to %s fare estimate ola uber booking", departure, destination)
	instruction := fmt.Sprintf("Extract local cab and auto options from %s to %s, including providers, vehicle types, and estimated fares.", departure, destination)

	result := s.execute(ctx, query, instruction)
	result.BookingLinks = s.cabLinks(ctx, departure, destination, links.ForLocalCabs)
	return result
}

func (s *Service) execute(ctx context.Context, query, instruction string) travel.CategoryResult {
	digest := s.searcher.SearchWeb(ctx, query)
	processed := s.summarizer.Summarize(ctx, digest, instruction)
	return travel.CategoryResult{
		SearchResults: digest,
		ProcessedData: processed,
		SearchQuery:   query,
		Timestamp:     s.now().UTC(),
	}
}

// cabLinks geocodes both endpoints and builds ride-hailing deep links. Either
// endpoint failing to resolve drops the links, never the search.
func (s *Service) cabLinks(ctx context.Context, departure, destination string, build func(dep, dest travel.Geocode) map[string]string) map[string]string {
	if s.geo == nil {
		return nil
	}
	dep, okDep := s.geo.Geocode(ctx, departure)
	dest, okDest := s.geo.Geocode(ctx, destination)
	if !okDep || !okDest {
		return nil
	}
	return build(dep, dest)
}

func dateOrToday(date string) string {
	if strings.TrimSpace(date) == "" {
		return "today"
	}
	return date
}

func parseDate(date string) (time.Time, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, false
	}
	when, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return when, true
}
