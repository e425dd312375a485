package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

const (
	// defaultDuration is used when the date range is incomplete.
	defaultDuration = 1
	// unparseableDuration is used when both dates are supplied but one of
	// them does not parse.
	unparseableDuration = 3

	localOutingLabel = "Local Outing"
)

// Geocoder resolves a location string to coordinates and an admin-area
// decomposition.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (travel.Geocode, bool)
}

// Generator produces free text from a prompt, degrading to sentinels when
// the backend is offline.
type Generator interface {
	Available() bool
	Generate(ctx context.Context, prompt string) string
}

// Planner decides between an intracity local outing and a multi-day
// itinerary, builds the matching prompt and delegates to the generator.
// Itinerary generation is knowledge-only: it never consults web search.
type Planner struct {
	geo Geocoder
	llm Generator
	now func() time.Time
}

// New wires the planner.
func New(geo Geocoder, llm Generator) *Planner {
	return &Planner{geo: geo, llm: llm, now: time.Now}
}

// Plan generates an itinerary for the trip described by the arguments.
func (p *Planner) Plan(ctx context.Context, departure, destination string, dates *travel.DateRange, profile map[string]any) travel.Itinerary {
	if destination == "" {
		destination = "Your Destination"
	}

	durationDays := computeDuration(dates)
	intracity := p.isIntracity(ctx, departure, destination)

	displayDuration := fmt.Sprintf("%d Day(s)", durationDays)
	var prompt string
	if intracity {
		displayDuration = localOutingLabel
		prompt = fmt.Sprintf(`Create a plan for a local, one-day outing. The user wants to explore the area around "%s".
Instructions: Suggest 3-4 interesting local places. Create a simple schedule. Include suggestions for local transport and estimated costs.`, destination)
	} else {
		prompt = fmt.Sprintf(`Create a practical %d-day travel itinerary for %s.
- The itinerary should span exactly %d days.
- For each day, suggest 2-4 main activities with timings.
- Include approximate costs in local currency and suggestions for transport.
- Provide a total estimated budget summary for the trip (excluding flights/hotels).
Keep the response concise and well-formatted.`, durationDays, titleCase(destination), durationDays)
	}

	content := "Itinerary generation is currently unavailable."
	if p.llm.Available() {
		content = p.llm.Generate(ctx, prompt)
	}

	return travel.Itinerary{
		Traveler:    travelerName(profile),
		Destination: titleCase(destination),
		Duration:    displayDuration,
		Itinerary:   content,
		GeneratedAt: p.now().Format("2006-01-02 15:04:05"),
	}
}

// isIntracity holds iff both endpoints geocode to a non-empty city-or-county
// and the names match case-insensitively. This is the planner's single
// branch point.
func (p *Planner) isIntracity(ctx context.Context, departure, destination string) bool {
	dep, okDep := p.geo.Geocode(ctx, departure)
	dest, okDest := p.geo.Geocode(ctx, destination)
	if !okDep || !okDest {
		return false
	}

	depCity := dep.CityOrCounty()
	destCity := dest.CityOrCounty()
	return depCity != "" && destCity != "" && strings.EqualFold(depCity, destCity)
}

// computeDuration derives the inclusive day count from the date range.
// Missing either date defaults to 1; both present but unparseable defaults
// to 3; non-positive spans clamp to 1.
func computeDuration(dates *travel.DateRange) int {
	if dates == nil || dates.Departure == "" || dates.Return == "" {
		return defaultDuration
	}

	start, errStart := parseDate(dates.Departure)
	end, errEnd := parseDate(dates.Return)
	if errStart != nil || errEnd != nil {
		return unparseableDuration
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days <= 0 {
		return 1
	}
	return days
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func travelerName(profile map[string]any) string {
	if profile != nil {
		if name, ok := profile["name"].(string); ok && name != "" {
			return name
		}
	}
	return "Traveler"
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
