package travel

import "time"

// SearchResult is one hit returned by a web search provider.
type SearchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// CategoryResult is the outcome of one category search (flights, hotels,
// trains, buses or cabs): the raw digest plus the AI-processed summary.
type CategoryResult struct {
	SearchResults string            `json:"search_results"`
	ProcessedData string            `json:"processed_data"`
	SearchQuery   string            `json:"search_query"`
	Timestamp     time.Time         `json:"timestamp"`
	BookingLinks  map[string]string `json:"booking_links,omitempty"`
}
