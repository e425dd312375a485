package travel

// Itinerary is a generated trip plan.
type Itinerary struct {
	Traveler    string `json:"traveler"`
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Itinerary   string `json:"itinerary"`
	GeneratedAt string `json:"generated_at"`
}

// Guide bundles curated material for a destination.
type Guide struct {
	YouTubeLinksMD  string `json:"youtube_links_md"`
	GoogleEarthLink string `json:"google_earth_link"`
	City            string `json:"city"`
}
