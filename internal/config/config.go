package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the job search pipeline.
type Config struct {
	Google  GoogleConfig
	Scraper ScraperConfig
	Search  SearchConfig
}

// GoogleConfig holds Custom Search API credentials and tuning.
// Missing credentials are not an error: the search fetcher degrades
// to an empty result.
type GoogleConfig struct {
	APIKey         string
	SearchEngineID string
	Timeout        time.Duration
	MaxResults     int
}

// ScraperConfig holds direct-site scraping settings.
type ScraperConfig struct {
	UserAgent string
	Timeout   time.Duration
	MaxPages  int
	// Inter-request spacing per site, randomized in [MinDelay, MaxDelay].
	MinDelay time.Duration
	MaxDelay time.Duration
}

// SearchConfig holds pipeline-level settings.
type SearchConfig struct {
	MaxQueries int
}

// Load creates a Config from environment variables with defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("jobsearch")
	v.AutomaticEnv()

	// Credentials keep their conventional names.
	v.BindEnv("google.api_key", "GOOGLE_API_KEY")
	v.BindEnv("google.cse_id", "GOOGLE_CSE_ID")

	v.SetDefault("google.timeout_ms", 10000)
	v.SetDefault("google.max_results", 10)
	v.SetDefault("scraper.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("scraper.timeout_ms", 15000)
	v.SetDefault("scraper.max_pages", 1)
	v.SetDefault("scraper.min_delay_ms", 1000)
	v.SetDefault("scraper.max_delay_ms", 2000)
	v.SetDefault("search.max_queries", 5)

	return &Config{
		Google: GoogleConfig{
			APIKey:         v.GetString("google.api_key"),
			SearchEngineID: v.GetString("google.cse_id"),
			Timeout:        time.Duration(v.GetInt("google.timeout_ms")) * time.Millisecond,
			MaxResults:     v.GetInt("google.max_results"),
		},
		Scraper: ScraperConfig{
			UserAgent: v.GetString("scraper.user_agent"),
			Timeout:   time.Duration(v.GetInt("scraper.timeout_ms")) * time.Millisecond,
			MaxPages:  v.GetInt("scraper.max_pages"),
			MinDelay:  time.Duration(v.GetInt("scraper.min_delay_ms")) * time.Millisecond,
			MaxDelay:  time.Duration(v.GetInt("scraper.max_delay_ms")) * time.Millisecond,
		},
		Search: SearchConfig{
			MaxQueries: v.GetInt("search.max_queries"),
		},
	}
}
