package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/zappabad/coinwire/internal/fetch"
	"github.com/zappabad/coinwire/internal/news"
)

// envelope is the response shape of the news endpoint.
type envelope struct {
	Data []record `json:"Data"`
}

type record struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ImageURL    string `json:"imageurl"`
	Source      string `json:"source"`
	PublishedOn int64  `json:"published_on"`
	Categories  string `json:"categories"`
	URL         string `json:"url"`
}

func (r record) article() news.Article {
	return news.Article{
		Title:         r.Title,
		Body:          r.Body,
		ImageURL:      r.ImageURL,
		Source:        r.Source,
		PublishedAt:   time.Unix(r.PublishedOn, 0),
		RawCategories: r.Categories,
		URL:           r.URL,
	}
}

// NewsService fetches the news listing.
type NewsService struct {
	cfg    Config
	client *fetch.Client
	log    *slog.Logger
}

// NewNewsService creates a new NewsService. A nil logger uses slog.Default().
func NewNewsService(cfg Config, log *slog.Logger) *NewsService {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultConfig().Endpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = slog.Default()
	}

	return &NewsService{
		cfg:    cfg,
		client: fetch.NewClient(&http.Client{Timeout: cfg.Timeout}),
		log:    log.With("component", "news"),
	}
}

// Fetch issues one request and returns the articles in the order received.
// Failures are *fetch.NetworkError or *fetch.ParseError; there is no retry.
func (s *NewsService) Fetch(ctx context.Context) ([]news.Article, error) {
	var env envelope
	if err := s.client.GetJSON(ctx, s.cfg.Endpoint, &env); err != nil {
		s.log.Error("fetching news", "err", err)
		return nil, fmt.Errorf("fetching news: %w", err)
	}

	articles := make([]news.Article, 0, len(env.Data))
	for _, r := range env.Data {
		articles = append(articles, r.article())
	}
	s.log.Debug("fetched news", "count", len(articles))
	return articles, nil
}
