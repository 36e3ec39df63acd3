package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zappabad/coinwire/internal/fetch"
	"github.com/zappabad/coinwire/internal/market"
)

// PriceService fetches quotes for a fixed set of assets.
type PriceService struct {
	cfg    Config
	client *fetch.Client
	log    *slog.Logger
}

// NewPriceService creates a new PriceService. A nil logger uses slog.Default().
func NewPriceService(cfg Config, log *slog.Logger) *PriceService {
	def := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if len(cfg.Assets) == 0 {
		cfg.Assets = def.Assets
	}
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = def.RefreshInterval
	}
	if log == nil {
		log = slog.Default()
	}

	return &PriceService{
		cfg:    cfg,
		client: fetch.NewClient(&http.Client{Timeout: cfg.Timeout}),
		log:    log.With("component", "prices"),
	}
}

// Assets returns the configured assets in ticker order.
func (s *PriceService) Assets() []market.AssetID {
	return append([]market.AssetID(nil), s.cfg.Assets...)
}

// RefreshInterval returns the configured ticker refresh period.
func (s *PriceService) RefreshInterval() time.Duration {
	return s.cfg.RefreshInterval
}

// URL returns the request URL for the configured assets.
func (s *PriceService) URL() string {
	ids := make([]string, len(s.cfg.Assets))
	for i, a := range s.cfg.Assets {
		ids[i] = string(a)
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", s.cfg.Currency)
	q.Set("include_24hr_change", "true")
	return s.cfg.Endpoint + "?" + q.Encode()
}

// Fetch issues one request and returns the quotes keyed by asset. Failures
// are *fetch.NetworkError or *fetch.ParseError; there is no retry.
func (s *PriceService) Fetch(ctx context.Context) (market.Quotes, error) {
	var body map[string]map[string]float64
	if err := s.client.GetJSON(ctx, s.URL(), &body); err != nil {
		s.log.Error("fetching prices", "err", err)
		return nil, fmt.Errorf("fetching prices: %w", err)
	}

	priceKey := s.cfg.Currency
	changeKey := s.cfg.Currency + "_24h_change"

	quotes := make(market.Quotes, len(body))
	for id, fields := range body {
		asset := market.AssetID(id)
		quotes[asset] = market.Quote{
			Asset:            asset,
			PriceUSD:         fields[priceKey],
			Change24hPercent: fields[changeKey],
		}
	}
	s.log.Debug("fetched prices", "count", len(quotes))
	return quotes, nil
}
