// Package session sequences one load of the news reader: fetch, filter,
// categorize and render the day's news, then keep the price ticker fresh.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zappabad/coinwire/internal/market"
	marketview "github.com/zappabad/coinwire/internal/market/view"
	"github.com/zappabad/coinwire/internal/news"
	newsview "github.com/zappabad/coinwire/internal/news/view"
)

// ErrNoNewsToday is returned when the listing has nothing published today.
var ErrNoNewsToday = errors.New("no news today")

// ErrAlreadyRun is returned by a second call to Run.
var ErrAlreadyRun = errors.New("session already run")

// User-visible messages for the error state.
const (
	MsgNoNewsToday = "No news available for today. Please check back later."
	MsgLoadFailed  = "Failed to load news. Please try again later."
	MsgPricesStale = "Price update failed, showing last known prices"
)

// State is the lifecycle state of a session.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// NewsFetcher returns the raw news listing.
type NewsFetcher interface {
	Fetch(ctx context.Context) ([]news.Article, error)
}

// PriceFetcher returns the latest quotes.
type PriceFetcher interface {
	Fetch(ctx context.Context) (market.Quotes, error)
}

// Config holds configuration for a session.
type Config struct {
	// Assets orders the ticker.
	Assets []market.AssetID
	// RefreshInterval is the ticker refresh period. Zero disables the refresh loop.
	RefreshInterval time.Duration
	// Now supplies the reference time for "today". Defaults to time.Now.
	Now func() time.Time
}

// Session owns the day's articles and the ticker refresh loop.
type Session struct {
	cfg    Config
	news   NewsFetcher
	prices PriceFetcher
	log    *slog.Logger

	view  *newsview.NewsView
	armed atomic.Bool
	ran   atomic.Bool

	mu    sync.Mutex
	state State
	err   error

	wg sync.WaitGroup
}

// New creates a Session. A nil logger uses slog.Default().
func New(cfg Config, newsFetcher NewsFetcher, priceFetcher PriceFetcher, log *slog.Logger) *Session {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		cfg:    cfg,
		news:   newsFetcher,
		prices: priceFetcher,
		log:    log.With("component", "session"),
		view:   newsview.NewNewsView(),
	}
}

// Run performs the load and, on success, starts the ticker refresh loop,
// which runs until ctx is done. It returns nil once the session is ready, or
// the cause of the error state.
func (s *Session) Run(ctx context.Context, surface Surface) error {
	if !s.ran.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	surface.ShowLoading()

	if err := s.load(ctx, surface); err != nil {
		msg := MsgLoadFailed
		if errors.Is(err, ErrNoNewsToday) {
			msg = MsgNoNewsToday
		}
		s.log.Error("initialization failed", "err", err)
		s.setState(StateError, err)
		surface.HideLoading()
		surface.ShowError(msg)
		return err
	}

	if s.cfg.RefreshInterval > 0 {
		s.wg.Add(1)
		go s.refreshLoop(ctx, surface)
	}

	surface.HideLoading()
	s.setState(StateReady, nil)
	s.log.Info("session ready", "articles", s.view.Count())
	return nil
}

func (s *Session) load(ctx context.Context, surface Surface) error {
	fetched, err := s.news.Fetch(ctx)
	if err != nil {
		return err
	}

	today := newsview.Today(fetched, s.cfg.Now())
	s.log.Debug("filtered news", "fetched", len(fetched), "today", len(today))
	if len(today) == 0 {
		return ErrNoNewsToday
	}

	s.view.Load(today)
	surface.SetNav(s.view.Nav())
	surface.SetArticles(s.view.Select(newsview.AllCategory))
	s.armed.Store(true)

	quotes, err := s.prices.Fetch(ctx)
	if err != nil {
		return err
	}
	surface.SetTicker(marketview.TickerItems(quotes, s.cfg.Assets))
	return nil
}

// refreshLoop re-fetches prices every RefreshInterval. A failed tick is
// logged and skipped; the ticker keeps its last content.
func (s *Session) refreshLoop(ctx context.Context, surface Surface) {
	defer s.wg.Done()

	t := time.NewTicker(s.cfg.RefreshInterval)
	defer t.Stop()

	stale := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			quotes, err := s.prices.Fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warn("price refresh failed, keeping last ticker", "err", err)
				stale = true
				surface.SetStatus(MsgPricesStale)
				continue
			}
			surface.SetTicker(marketview.TickerItems(quotes, s.cfg.Assets))
			if stale {
				stale = false
				surface.SetStatus("")
			}
		}
	}
}

// Select returns the cards for a navigation choice: every article for
// newsview.AllCategory, the category's articles otherwise, and none for an
// unknown category or before the articles are rendered.
func (s *Session) Select(category string) []newsview.Card {
	if !s.armed.Load() {
		return nil
	}
	return s.view.Select(category)
}

// State returns the current state and, in StateError, its cause.
func (s *Session) State() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.err
}

func (s *Session) setState(state State, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.err = err
}

// Wait blocks until the refresh loop has stopped.
func (s *Session) Wait() {
	s.wg.Wait()
}
