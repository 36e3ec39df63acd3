package view

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/zappabad/coinwire/internal/market"
)

const (
	upArrow   = "▲"
	downArrow = "▼"
)

// Direction classes a ticker item by the sign of its 24h change.
type Direction int

const (
	PriceUp Direction = iota
	PriceDown
)

// String returns the direction's class name.
func (d Direction) String() string {
	if d == PriceDown {
		return "price-down"
	}
	return "price-up"
}

// TickerItem is one segment of the ticker strip.
type TickerItem struct {
	Asset     market.AssetID
	Text      string
	Direction Direction
}

// TickerItems formats one item per quote. Assets listed in order come first,
// in that order; any other quoted assets follow sorted by id.
func TickerItems(quotes market.Quotes, order []market.AssetID) []TickerItem {
	items := make([]TickerItem, 0, len(quotes))
	listed := make(map[market.AssetID]bool, len(order))

	for _, a := range order {
		if listed[a] {
			continue
		}
		listed[a] = true
		if q, ok := quotes[a]; ok {
			items = append(items, tickerItem(q))
		}
	}

	var rest []market.AssetID
	for a := range quotes {
		if !listed[a] {
			rest = append(rest, a)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, a := range rest {
		items = append(items, tickerItem(quotes[a]))
	}
	return items
}

func tickerItem(q market.Quote) TickerItem {
	dir, arrow := PriceUp, upArrow
	if q.Change24hPercent < 0 {
		dir, arrow = PriceDown, downArrow
	}
	return TickerItem{
		Asset:     q.Asset,
		Text:      fmt.Sprintf("%s: $%s %s %s%%", q.Asset.Symbol(), fixed2(q.PriceUSD), arrow, fixed2(math.Abs(q.Change24hPercent))),
		Direction: dir,
	}
}

// fixed2 renders v with two decimals, rounding half away from zero on the
// shortest decimal form of v rather than its binary expansion.
func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
