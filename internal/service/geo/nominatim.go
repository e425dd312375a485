package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yatrika/travel-assistant/backend/internal/config"
	"github.com/yatrika/travel-assistant/backend/internal/model/travel"
)

// Resolver turns a free-form address into coordinates plus a city/county
// decomposition using the Nominatim search API. Lookups are cached because
// the upstream service is rate-limited and the planner geocodes the same
// endpoints repeatedly within a conversation.
type Resolver struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      *gocache.Cache
}

// NewResolver builds a resolver from configuration.
func NewResolver(cfg config.GeoConfig) *Resolver {
	return &Resolver{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
	}
}

type nominatimHit struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City   string `json:"city"`
		County string `json:"county"`
	} `json:"address"`
}

// Geocode returns the first match for the address. Any failure degrades to
// ok=false; callers treat an unresolvable endpoint as "no classification".
func (r *Resolver) Geocode(ctx context.Context, address string) (travel.Geocode, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return travel.Geocode{}, false
	}

	cacheKey := strings.ToLower(address)
	if cached, ok := r.cache.Get(cacheKey); ok {
		hit := cached.(travel.Geocode)
		return hit, true
	}

	result, err := r.lookup(ctx, address)
	if err != nil {
		log.Printf("[geo] geocoding failed for %q: %v", address, err)
		return travel.Geocode{}, false
	}

	r.cache.SetDefault(cacheKey, result)
	return result, true
}

func (r *Resolver) lookup(ctx context.Context, address string) (travel.Geocode, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "1")

	endpoint := r.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return travel.Geocode{}, err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return travel.Geocode{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return travel.Geocode{}, fmt.Errorf("nominatim status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var hits []nominatimHit
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return travel.Geocode{}, err
	}
	if len(hits) == 0 {
		return travel.Geocode{}, fmt.Errorf("no match for %q", address)
	}

	first := hits[0]
	lat, err := strconv.ParseFloat(first.Lat, 64)
	if err != nil {
		return travel.Geocode{}, fmt.Errorf("bad latitude %q: %w", first.Lat, err)
	}
	lon, err := strconv.ParseFloat(first.Lon, 64)
	if err != nil {
		return travel.Geocode{}, fmt.Errorf("bad longitude %q: %w", first.Lon, err)
	}

	return travel.Geocode{
		Lat:         lat,
		Lon:         lon,
		City:        first.Address.City,
		County:      first.Address.County,
		DisplayName: first.DisplayName,
	}, nil
}
