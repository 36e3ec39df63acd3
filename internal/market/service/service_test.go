package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zappabad/coinwire/internal/fetch"
	"github.com/zappabad/coinwire/internal/market"
)

func TestPriceServiceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("ids") != "bitcoin,ethereum,ripple,cardano,polkadot" {
			t.Errorf("unexpected ids %q", q.Get("ids"))
		}
		if q.Get("vs_currencies") != "usd" || q.Get("include_24hr_change") != "true" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{
			"bitcoin": {"usd": 50000.005, "usd_24h_change": -2.345},
			"ethereum": {"usd": 3000, "usd_24h_change": 1.25}
		}`))
	}))
	defer srv.Close()

	svc := NewPriceService(Config{Endpoint: srv.URL}, nil)
	quotes, err := svc.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}

	btc, ok := quotes["bitcoin"]
	if !ok {
		t.Fatal("bitcoin not in quotes")
	}
	if btc.Asset != "bitcoin" || btc.PriceUSD != 50000.005 || btc.Change24hPercent != -2.345 {
		t.Errorf("unexpected bitcoin quote %+v", btc)
	}
}

func TestPriceServiceFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		network bool
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			network: true,
		},
		{
			name: "wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"bitcoin": {"usd": "a lot"}}`))
			},
			network: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewPriceService(Config{Endpoint: srv.URL}, nil).Fetch(context.Background())
			var netErr *fetch.NetworkError
			var parseErr *fetch.ParseError
			switch {
			case err == nil:
				t.Fatal("expected error")
			case tt.network && !errors.As(err, &netErr):
				t.Errorf("expected NetworkError, got %v", err)
			case !tt.network && !errors.As(err, &parseErr):
				t.Errorf("expected ParseError, got %v", err)
			}
		})
	}
}

func TestPriceServiceDefaults(t *testing.T) {
	svc := NewPriceService(Config{}, nil)
	if got := svc.Assets(); len(got) != len(market.DefaultAssets) {
		t.Errorf("expected default assets, got %v", got)
	}
	if svc.RefreshInterval() != DefaultConfig().RefreshInterval {
		t.Errorf("expected default refresh interval, got %v", svc.RefreshInterval())
	}
	want := DefaultEndpoint + "?ids=bitcoin%2Cethereum%2Cripple%2Ccardano%2Cpolkadot&include_24hr_change=true&vs_currencies=usd"
	if svc.URL() != want {
		t.Errorf("URL() = %q, want %q", svc.URL(), want)
	}
}
