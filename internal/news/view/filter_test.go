package view

import (
	"testing"
	"time"

	"github.com/zappabad/coinwire/internal/news"
)

func TestTodayBoundaries(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, loc)

	articles := []news.Article{
		{Title: "start of day", PublishedAt: time.Date(2024, 3, 15, 0, 0, 0, 0, loc)},
		{Title: "last second", PublishedAt: time.Date(2024, 3, 15, 23, 59, 59, 0, loc)},
		{Title: "tomorrow", PublishedAt: time.Date(2024, 3, 16, 0, 0, 0, 0, loc)},
		{Title: "yesterday", PublishedAt: time.Date(2024, 3, 14, 23, 59, 59, 0, loc)},
		{Title: "later today", PublishedAt: time.Date(2024, 3, 15, 18, 0, 0, 0, loc)},
	}

	got := Today(articles, now)
	want := []string{"start of day", "last second", "later today"}
	if len(got) != len(want) {
		t.Fatalf("expected %d articles, got %d", len(want), len(got))
	}
	for i, a := range got {
		if a.Title != want[i] {
			t.Errorf("article %d: expected %q, got %q", i, want[i], a.Title)
		}
	}
}

func TestTodayUsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, 3, 15, 22, 0, 0, 0, loc)

	// 02:00 UTC on the 16th is still the 15th at UTC-5.
	published := time.Date(2024, 3, 16, 2, 0, 0, 0, time.UTC)
	got := Today([]news.Article{{Title: "late", PublishedAt: published}}, now)
	if len(got) != 1 {
		t.Fatalf("expected article to count as today in %s, got %d", loc, len(got))
	}
}

func TestTodayEmpty(t *testing.T) {
	if got := Today(nil, time.Now()); len(got) != 0 {
		t.Errorf("expected no articles, got %d", len(got))
	}
}
