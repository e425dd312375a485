package travel

// Geocode is the first match for a geocoding query.
type Geocode struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	City        string  `json:"city"`
	County      string  `json:"county"`
	DisplayName string  `json:"display_name"`
}

// CityOrCounty returns the city when present, otherwise the county.
func (g Geocode) CityOrCounty() string {
	if g.City != "" {
		return g.City
	}
	return g.County
}
