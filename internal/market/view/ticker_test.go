package view

import (
	"testing"

	"github.com/zappabad/coinwire/internal/market"
)

func TestTickerItemFormat(t *testing.T) {
	tests := []struct {
		name  string
		quote market.Quote
		text  string
		dir   Direction
	}{
		{
			name:  "down with rounding",
			quote: market.Quote{Asset: "bitcoin", PriceUSD: 50000.005, Change24hPercent: -2.345},
			text:  "BITCOIN: $50000.01 ▼ 2.35%",
			dir:   PriceDown,
		},
		{
			name:  "up",
			quote: market.Quote{Asset: "ethereum", PriceUSD: 3120.4, Change24hPercent: 1.5},
			text:  "ETHEREUM: $3120.40 ▲ 1.50%",
			dir:   PriceUp,
		},
		{
			name:  "zero change counts as up",
			quote: market.Quote{Asset: "ripple", PriceUSD: 0.5, Change24hPercent: 0},
			text:  "RIPPLE: $0.50 ▲ 0.00%",
			dir:   PriceUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := TickerItems(market.Quotes{tt.quote.Asset: tt.quote}, nil)
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			if items[0].Text != tt.text {
				t.Errorf("Text = %q, want %q", items[0].Text, tt.text)
			}
			if items[0].Direction != tt.dir {
				t.Errorf("Direction = %v, want %v", items[0].Direction, tt.dir)
			}
		})
	}
}

func TestTickerItemsOrder(t *testing.T) {
	quotes := market.Quotes{
		"polkadot": {Asset: "polkadot", PriceUSD: 7},
		"bitcoin":  {Asset: "bitcoin", PriceUSD: 60000},
		"solana":   {Asset: "solana", PriceUSD: 150},
		"cardano":  {Asset: "cardano", PriceUSD: 0.4},
		"aave":     {Asset: "aave", PriceUSD: 90},
	}

	items := TickerItems(quotes, market.DefaultAssets)
	want := []market.AssetID{"bitcoin", "cardano", "polkadot", "aave", "solana"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, item := range items {
		if item.Asset != want[i] {
			t.Errorf("item %d: expected %s, got %s", i, want[i], item.Asset)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if PriceUp.String() != "price-up" || PriceDown.String() != "price-down" {
		t.Errorf("unexpected class names %q %q", PriceUp, PriceDown)
	}
}
