package market

import "strings"

// AssetID is the price endpoint's lowercase identifier for an asset, e.g. "bitcoin".
type AssetID string

// Symbol returns the upper-cased identifier shown on the ticker.
func (a AssetID) Symbol() string {
	return strings.ToUpper(string(a))
}

// DefaultAssets are the assets quoted on the ticker.
var DefaultAssets = []AssetID{"bitcoin", "ethereum", "ripple", "cardano", "polkadot"}

// Quote is the USD price of an asset and its signed 24-hour change in percent.
type Quote struct {
	Asset            AssetID
	PriceUSD         float64
	Change24hPercent float64
}

// Quotes maps assets to their latest quote. Each fetch replaces it wholesale.
type Quotes map[AssetID]Quote
