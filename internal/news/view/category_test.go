package view

import (
	"testing"

	"github.com/zappabad/coinwire/internal/news"
)

func titles(articles []news.Article) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCategorizeMultipleLabels(t *testing.T) {
	articles := []news.Article{
		{Title: "one", RawCategories: "Bitcoin|Trading"},
		{Title: "two", RawCategories: "Trading"},
		{Title: "three", RawCategories: "Bitcoin"},
	}

	idx := Categorize(articles)

	btc, ok := idx.Articles("Bitcoin")
	if !ok {
		t.Fatal("expected Bitcoin category")
	}
	if got := titles(btc); !equalStrings(got, []string{"one", "three"}) {
		t.Errorf("Bitcoin = %v", got)
	}

	trading, ok := idx.Articles("Trading")
	if !ok {
		t.Fatal("expected Trading category")
	}
	if got := titles(trading); !equalStrings(got, []string{"one", "two"}) {
		t.Errorf("Trading = %v", got)
	}
}

func TestCategorizeLabelOrder(t *testing.T) {
	articles := []news.Article{
		{Title: "a", RawCategories: "Mining|ETH"},
		{Title: "b", RawCategories: "BTC|Mining"},
		{Title: "c", RawCategories: "Altcoin"},
	}

	idx := Categorize(articles)
	want := []string{"Mining", "ETH", "BTC", "Altcoin"}
	if got := idx.Labels(); !equalStrings(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
	if idx.Len() != 4 {
		t.Errorf("Len() = %d, want 4", idx.Len())
	}
}

func TestCategorizeKeysAreNotTrimmed(t *testing.T) {
	idx := Categorize([]news.Article{{Title: "a", RawCategories: "BTC| Trading"}})

	if idx.Has("Trading") {
		t.Error("trimmed key should not exist")
	}
	if !idx.Has(" Trading") {
		t.Error("expected untrimmed key \" Trading\"")
	}
}

func TestCategorizeUnknownLabel(t *testing.T) {
	idx := Categorize([]news.Article{{Title: "a", RawCategories: "BTC"}})
	list, ok := idx.Articles("Nope")
	if ok || len(list) != 0 {
		t.Errorf("expected no articles for unknown label, got %v", list)
	}
}
