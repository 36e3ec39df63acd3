package view

import (
	"sync"

	"github.com/zappabad/coinwire/internal/news"
)

const (
	// AllCategory selects every article of the day. It is not a real category.
	AllCategory = "all"
	// PinnedCategory is listed right after "all" when present.
	PinnedCategory = "ICP"

	// ExcerptLength is the number of body characters shown on a card.
	ExcerptLength = 150
	// Ellipsis follows every excerpt.
	Ellipsis = "..."

	// PublishedLayout renders card timestamps in local time.
	PublishedLayout = "1/2/2006, 3:04:05 PM"
)

// NavEntry is one selectable item of the category navigation.
type NavEntry struct {
	Category string // selection key passed back to Select
	Label    string
	Icon     string
}

// Card is the rendered form of one article.
type Card struct {
	ImageURL  string
	Title     string
	Excerpt   string
	Source    string
	Published string
	Tags      []string
	URL       string
}

// NavEntries lists "all" first, then the pinned category if present, then
// the remaining labels in index order.
func NavEntries(idx *CategoryIndex) []NavEntry {
	entries := make([]NavEntry, 0, idx.Len()+1)
	entries = append(entries, NavEntry{Category: AllCategory, Label: "All", Icon: AllIcon})

	if idx.Has(PinnedCategory) {
		entries = append(entries, navEntry(PinnedCategory))
	}
	for _, label := range idx.Labels() {
		if label == PinnedCategory {
			continue
		}
		entries = append(entries, navEntry(label))
	}
	return entries
}

func navEntry(label string) NavEntry {
	return NavEntry{Category: label, Label: label, Icon: IconFor(label)}
}

// Cards renders one card per article, in order.
func Cards(articles []news.Article) []Card {
	cards := make([]Card, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, Card{
			ImageURL:  a.ImageURL,
			Title:     a.Title,
			Excerpt:   Excerpt(a.Body),
			Source:    a.Source,
			Published: a.PublishedAt.Format(PublishedLayout),
			Tags:      a.Tags(),
			URL:       a.URL,
		})
	}
	return cards
}

// Excerpt cuts body to ExcerptLength characters, with no regard for word
// boundaries, and appends Ellipsis.
func Excerpt(body string) string {
	runes := []rune(body)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return string(runes) + Ellipsis
}

// NewsView holds the day's articles and their category index. It is filled
// once and read by category selection afterwards.
type NewsView struct {
	mu    sync.RWMutex
	all   []news.Article
	index *CategoryIndex
}

// NewNewsView creates an empty NewsView.
func NewNewsView() *NewsView {
	return &NewsView{index: Categorize(nil)}
}

// Load replaces the view's articles and rebuilds the index.
func (v *NewsView) Load(articles []news.Article) {
	idx := Categorize(articles)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.all = articles
	v.index = idx
}

// Nav returns the navigation entries for the loaded articles.
func (v *NewsView) Nav() []NavEntry {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return NavEntries(v.index)
}

// Select returns the cards for a navigation choice. Unknown categories yield
// no cards.
func (v *NewsView) Select(category string) []Card {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if category == AllCategory {
		return Cards(v.all)
	}
	list, _ := v.index.Articles(category)
	return Cards(list)
}

// Count returns the number of loaded articles.
func (v *NewsView) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.all)
}
