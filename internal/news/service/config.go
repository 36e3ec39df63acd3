package service

import "time"

// DefaultEndpoint is the news listing endpoint, filtered to English articles.
const DefaultEndpoint = "https://min-api.cryptocompare.com/data/v2/news/?lang=EN"

// Config holds configuration for the news service.
type Config struct {
	// Endpoint is the full URL of the news listing, query included.
	Endpoint string
	// Timeout bounds a single fetch.
	Timeout time.Duration
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Timeout:  10 * time.Second,
	}
}
