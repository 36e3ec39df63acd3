package view

import (
	"time"

	"github.com/zappabad/coinwire/internal/news"
)

// Today returns the articles published on now's calendar day, in now's
// location. Order is preserved.
func Today(articles []news.Article, now time.Time) []news.Article {
	day := midnight(now)
	var out []news.Article
	for _, a := range articles {
		if midnight(a.PublishedAt.In(now.Location())).Equal(day) {
			out = append(out, a)
		}
	}
	return out
}

// midnight truncates t to 00:00:00 of its own day. time.Truncate works in
// UTC and would be wrong for any other location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
