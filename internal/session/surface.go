package session

import (
	marketview "github.com/zappabad/coinwire/internal/market/view"
	newsview "github.com/zappabad/coinwire/internal/news/view"
)

// Surface is where a session renders. Every call replaces what the previous
// call of the same kind showed.
type Surface interface {
	ShowLoading()
	HideLoading()
	ShowError(msg string)
	SetNav(entries []newsview.NavEntry)
	SetArticles(cards []newsview.Card)
	SetTicker(items []marketview.TickerItem)
	// SetStatus shows a transient note; an empty msg clears it.
	SetStatus(msg string)
}
