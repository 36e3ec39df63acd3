package view

import "github.com/zappabad/coinwire/internal/news"

// CategoryIndex maps category labels to the articles carrying them. Labels
// keep the order in which they were first seen.
type CategoryIndex struct {
	labels  []string
	byLabel map[string][]news.Article
}

// Categorize builds the index. An article is listed under every one of its
// labels; within a label, articles keep their input order. Labels are used as
// keys exactly as split, without trimming.
func Categorize(articles []news.Article) *CategoryIndex {
	idx := &CategoryIndex{byLabel: make(map[string][]news.Article)}
	for _, a := range articles {
		for _, label := range a.Categories() {
			if _, seen := idx.byLabel[label]; !seen {
				idx.labels = append(idx.labels, label)
			}
			idx.byLabel[label] = append(idx.byLabel[label], a)
		}
	}
	return idx
}

// Labels returns the category labels in first-seen order.
func (c *CategoryIndex) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Articles returns the articles under label and whether the label exists.
func (c *CategoryIndex) Articles(label string) ([]news.Article, bool) {
	list, ok := c.byLabel[label]
	return list, ok
}

// Has reports whether label is a category in the index.
func (c *CategoryIndex) Has(label string) bool {
	_, ok := c.byLabel[label]
	return ok
}

// Len returns the number of distinct labels.
func (c *CategoryIndex) Len() int {
	return len(c.labels)
}
