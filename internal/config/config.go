package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every configurable concern of the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Search SearchConfig
	Geo    GeoConfig
}

// Load reads configuration from environment variables. A missing provider
// credential disables that capability instead of failing startup.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	search, err := loadSearchConfig()
	if err != nil {
		return nil, err
	}

	geo, err := loadGeoConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Search: search, Geo: geo}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8000"
	}

	if strings.Contains(port, ":") {
		// Allow ":8000" or "127.0.0.1:8000" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the text-generation backend.
type AIConfig struct {
	APIKey      string
	AccessKey   string
	SecretKey   string
	Model       string
	BaseURL     string
	Region      string
	Temperature *float64
	MaxTokens   *int
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a model instance from this configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("generation backend credentials missing: provide ARK_API_KEY + ARK_MODEL or the AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var maxTokens *int
	if c.MaxTokens != nil {
		val := *c.MaxTokens
		maxTokens = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:   strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:   strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:       strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:     getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:      getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}, nil
}

// SearchConfig carries credentials for the web search providers. Each provider
// is independently optional.
type SearchConfig struct {
	TavilyAPIKey      string
	SerperAPIKey      string
	DuckDuckGoEnabled bool
	Timeout           time.Duration
}

func loadSearchConfig() (SearchConfig, error) {
	ddg, err := parseBoolEnv("DUCKDUCKGO_ENABLED", true)
	if err != nil {
		return SearchConfig{}, err
	}

	timeoutSeconds := 10
	if override, err := parseOptionalIntEnv("SEARCH_TIMEOUT"); err != nil {
		return SearchConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	return SearchConfig{
		TavilyAPIKey:      strings.TrimSpace(os.Getenv("TAVILY_API_KEY")),
		SerperAPIKey:      strings.TrimSpace(os.Getenv("SERPER_API_KEY")),
		DuckDuckGoEnabled: ddg,
		Timeout:           time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// GeoConfig describes the geocoding provider.
type GeoConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

func loadGeoConfig() (GeoConfig, error) {
	timeoutSeconds := 10
	if override, err := parseOptionalIntEnv("GEOCODE_TIMEOUT"); err != nil {
		return GeoConfig{}, err
	} else if override != nil && *override > 0 {
		timeoutSeconds = *override
	}

	cacheMinutes := 60
	if override, err := parseOptionalIntEnv("GEOCODE_CACHE_MINUTES"); err != nil {
		return GeoConfig{}, err
	} else if override != nil && *override > 0 {
		cacheMinutes = *override
	}

	return GeoConfig{
		BaseURL:   getEnvOrDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent: getEnvOrDefault("GEOCODE_USER_AGENT", "TravelBot/1.0"),
		Timeout:   time.Duration(timeoutSeconds) * time.Second,
		CacheTTL:  time.Duration(cacheMinutes) * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
