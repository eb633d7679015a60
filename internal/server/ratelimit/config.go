package ratelimit

import (
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/letter-studio/internal/config"
)

// Rule overrides the default limit for one method and path.
// A Path ending in "/" matches every path under it. Limit is requests per
// Window with 0 meaning unlimited; Burst defaults to Limit when 0.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	DefaultBurst    int
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	Rules           []Rule
}

// FromConfig converts the application rate limit settings into a limiter Config.
func FromConfig(cfg config.RateLimitConfig) *Config {
	return &Config{
		Enabled:         cfg.Enabled,
		DefaultLimit:    cfg.Limit,
		DefaultWindow:   cfg.Window,
		DefaultBurst:    cfg.Burst,
		CleanupInterval: cfg.CleanupInterval,
		IdleTTL:         time.Hour,
		Whitelist:       toSet(cfg.Whitelist),
		Blacklist:       toSet(cfg.Blacklist),
		Rules:           DefaultRules(cfg.Limit, cfg.Window),
	}
}

// DefaultRules derives per-endpoint rules from the default limit. Batch and
// render requests do several times the work of a single letter.
func DefaultRules(limit int, window time.Duration) []Rule {
	heavy := max(limit/10, 1)
	return []Rule{
		{Path: "/letters/batch", Method: http.MethodPost, Limit: heavy, Window: window, Burst: max(heavy/2, 1)},
		{Path: "/letters/render", Method: http.MethodPost, Limit: heavy * 3, Window: window, Burst: max(heavy, 1)},
		{Path: "/health", Method: http.MethodGet, Limit: 0},
		{Path: "/metrics", Method: http.MethodGet, Limit: 0},
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			set[item] = true
		}
	}
	return set
}
