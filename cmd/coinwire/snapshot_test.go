package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	marketview "github.com/zappabad/coinwire/internal/market/view"
	newsview "github.com/zappabad/coinwire/internal/news/view"
	"github.com/zappabad/coinwire/internal/session"
)

type stubSession struct {
	err      error
	cards    []newsview.Card
	selected []newsview.Card
	asked    string
}

func (s *stubSession) Run(ctx context.Context, surface session.Surface) error {
	surface.ShowLoading()
	if s.err != nil {
		surface.HideLoading()
		surface.ShowError(session.MsgLoadFailed)
		return s.err
	}
	surface.SetNav([]newsview.NavEntry{
		{Category: newsview.AllCategory, Label: "All", Icon: newsview.AllIcon},
		{Category: "BTC", Label: "BTC", Icon: "₿"},
	})
	surface.SetArticles(s.cards)
	surface.SetTicker([]marketview.TickerItem{
		{Text: "BTC: $50000.00 ▲ 1.50%"},
		{Text: "ETH: $3000.00 ▼ 2.00%"},
	})
	surface.HideLoading()
	return nil
}

func (s *stubSession) Select(category string) []newsview.Card {
	s.asked = category
	return s.selected
}

func TestRunSnapshotPrintsEverything(t *testing.T) {
	sess := &stubSession{cards: []newsview.Card{{
		Title:     "Bitcoin rallies",
		Excerpt:   "Prices rose...",
		Source:    "coindesk",
		Published: "1/2/2024, 3:04:05 PM",
		Tags:      []string{"BTC", "Market"},
		URL:       "https://example.com/a",
	}}}

	var buf bytes.Buffer
	if err := runSnapshot(context.Background(), sess, &buf, newsview.AllCategory); err != nil {
		t.Fatalf("runSnapshot: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BTC: $50000.00 ▲ 1.50%  |  ETH: $3000.00 ▼ 2.00%",
		"Categories: " + newsview.AllIcon + " All, ₿ BTC",
		"Bitcoin rallies",
		"coindesk · 1/2/2024, 3:04:05 PM",
		"#BTC #Market",
		"Read more: https://example.com/a",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if sess.asked != "" {
		t.Errorf("Select called with %q for the all category", sess.asked)
	}
}

func TestRunSnapshotCategory(t *testing.T) {
	sess := &stubSession{
		cards:    []newsview.Card{{Title: "Everything", URL: "https://example.com/all"}},
		selected: []newsview.Card{{Title: "Only BTC", URL: "https://example.com/btc"}},
	}

	var buf bytes.Buffer
	if err := runSnapshot(context.Background(), sess, &buf, "BTC"); err != nil {
		t.Fatalf("runSnapshot: %v", err)
	}
	if sess.asked != "BTC" {
		t.Errorf("Select called with %q, want BTC", sess.asked)
	}
	out := buf.String()
	if !strings.Contains(out, "Only BTC") {
		t.Errorf("output missing selected card:\n%s", out)
	}
	if strings.Contains(out, "Everything") {
		t.Errorf("output contains unselected card:\n%s", out)
	}
}

func TestRunSnapshotError(t *testing.T) {
	boom := errors.New("boom")
	sess := &stubSession{err: boom}

	var buf bytes.Buffer
	err := runSnapshot(context.Background(), sess, &buf, newsview.AllCategory)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if got := strings.TrimSpace(buf.String()); got != session.MsgLoadFailed {
		t.Errorf("output = %q, want %q", got, session.MsgLoadFailed)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "coinwire dev") {
		t.Errorf("version output = %q", buf.String())
	}
}
