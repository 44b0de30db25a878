package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-waste-tracker/internal/config"
	"github.com/MKhiriev/go-waste-tracker/internal/logger"
	"github.com/MKhiriev/go-waste-tracker/internal/utils"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	ingredientSearchPath = "/food/ingredients/search"
	maxQueryWords        = 3
	defaultImageCacheTTL = 24 * time.Hour
)

type ingredientSearchResponse struct {
	Results []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"results"`
}

type imageLookup struct {
	client     *utils.HTTPClient
	apiKey     string
	cdnBaseURL string

	// cache holds resolved URLs per normalized query, including misses
	// stored as "".
	cache   *cache.Cache
	limiter *rate.Limiter

	logger *logger.Logger
}

// NewImageLookup constructs an [ImageLookup] backed by the ingredient search
// API at cfg.BaseURL. Lookups are rate limited to cfg.RatePerSecond with a
// burst of cfg.Burst and cached in memory for cfg.CacheTTL.
func NewImageLookup(cfg config.Images, log *logger.Logger) ImageLookup {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultImageCacheTTL
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(cfg.RatePerSecond)
	if cfg.RatePerSecond <= 0 {
		limit = rate.Inf
	}

	return &imageLookup{
		client:     utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout),
		apiKey:     cfg.APIKey,
		cdnBaseURL: cfg.CDNBaseURL,
		cache:      cache.New(ttl, ttl*2),
		limiter:    rate.NewLimiter(limit, burst),
		logger:     log,
	}
}

func (l *imageLookup) FindImage(ctx context.Context, foodName string) (string, error) {
	if l.apiKey == "" {
		return "", ErrNotConfigured
	}

	query := searchQuery(foodName)
	if query == "" {
		return "", nil
	}

	if cached, found := l.cache.Get(query); found {
		return cached.(string), nil
	}

	if err := l.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("image lookup rate limiter: %w", err)
	}

	var result ingredientSearchResponse
	resp, err := l.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"query":  query,
			"number": "1",
			"apiKey": l.apiKey,
		}).
		SetResult(&result).
		Get(ingredientSearchPath)
	if err != nil {
		return "", fmt.Errorf("image lookup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var imageURL string
	if len(result.Results) > 0 && result.Results[0].Image != "" {
		imageURL = l.cdnBaseURL + result.Results[0].Image
	}

	l.cache.Set(query, imageURL, cache.DefaultExpiration)
	l.logger.Debug().Str("func", "imageLookup.FindImage").Str("query", query).Bool("found", imageURL != "").Msg("image lookup finished")

	return imageURL, nil
}

// searchQuery keeps the first words of the food name, lowercased.
func searchQuery(foodName string) string {
	words := strings.Fields(strings.ToLower(foodName))
	if len(words) > maxQueryWords {
		words = words[:maxQueryWords]
	}

	return strings.Join(words, " ")
}
