package service

import (
	"time"

	"github.com/zappabad/coinwire/internal/market"
)

// DefaultEndpoint is the simple-price endpoint; the query is added per request.
const DefaultEndpoint = "https://api.coingecko.com/api/v3/simple/price"

// Config holds configuration for the price service.
type Config struct {
	// Endpoint is the price URL without a query string.
	Endpoint string
	// Assets are the asset ids requested, in ticker order.
	Assets []market.AssetID
	// Currency is the quote currency. Only "usd" is rendered by the ticker.
	Currency string
	// Timeout bounds a single fetch.
	Timeout time.Duration
	// RefreshInterval is the period of the ticker refresh loop.
	RefreshInterval time.Duration
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:        DefaultEndpoint,
		Assets:          append([]market.AssetID(nil), market.DefaultAssets...),
		Currency:        "usd",
		Timeout:         10 * time.Second,
		RefreshInterval: 300 * time.Second,
	}
}
