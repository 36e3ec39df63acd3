package news

import (
	"strings"
	"time"
)

// CategorySeparator splits the raw category string of an article.
const CategorySeparator = "|"

// Article is one news item as published by the news endpoint.
type Article struct {
	Title         string
	Body          string
	ImageURL      string
	Source        string
	PublishedAt   time.Time
	RawCategories string
	URL           string
}

// Categories returns the article's category labels in their original order.
// Labels are not trimmed.
func (a Article) Categories() []string {
	return strings.Split(a.RawCategories, CategorySeparator)
}

// Tags returns the category labels trimmed for display.
func (a Article) Tags() []string {
	labels := a.Categories()
	tags := make([]string, len(labels))
	for i, l := range labels {
		tags[i] = strings.TrimSpace(l)
	}
	return tags
}
