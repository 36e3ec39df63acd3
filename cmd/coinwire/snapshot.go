package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	marketview "github.com/zappabad/coinwire/internal/market/view"
	newsview "github.com/zappabad/coinwire/internal/news/view"
	"github.com/zappabad/coinwire/internal/session"
)

var flagCategory string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print today's news and prices once, without the TUI",
	Long: `Fetch today's news and the current prices, print them as plain text and exit.

Use --category to print a single category instead of every article.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, closer, err := setup(false)
		if err != nil {
			return err
		}
		defer closer.Close()

		return runSnapshot(cmd.Context(), sess, cmd.OutOrStdout(), flagCategory)
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&flagCategory, "category", newsview.AllCategory, "category to print")
}

// snapshotSession is the part of a session the snapshot command drives.
type snapshotSession interface {
	Run(ctx context.Context, surface session.Surface) error
	Select(category string) []newsview.Card
}

func runSnapshot(ctx context.Context, sess snapshotSession, w io.Writer, category string) error {
	surface := &textSurface{w: w}
	if err := sess.Run(ctx, surface); err != nil {
		return err
	}
	if category != newsview.AllCategory {
		surface.SetArticles(sess.Select(category))
	}
	surface.flush()
	return nil
}

// textSurface collects a session's output and prints it as plain text.
type textSurface struct {
	w        io.Writer
	nav      []newsview.NavEntry
	cards    []newsview.Card
	ticker   []marketview.TickerItem
	statuses []string
}

func (s *textSurface) ShowLoading() {}

func (s *textSurface) HideLoading() {}

func (s *textSurface) ShowError(msg string) {
	fmt.Fprintln(s.w, msg)
}

func (s *textSurface) SetNav(entries []newsview.NavEntry) { s.nav = entries }

func (s *textSurface) SetArticles(cards []newsview.Card) { s.cards = cards }

func (s *textSurface) SetTicker(items []marketview.TickerItem) { s.ticker = items }

func (s *textSurface) SetStatus(msg string) {
	if msg != "" {
		s.statuses = append(s.statuses, msg)
	}
}

func (s *textSurface) flush() {
	texts := make([]string, len(s.ticker))
	for i, item := range s.ticker {
		texts[i] = item.Text
	}
	fmt.Fprintln(s.w, strings.Join(texts, "  |  "))
	fmt.Fprintln(s.w)

	labels := make([]string, len(s.nav))
	for i, e := range s.nav {
		labels[i] = e.Icon + " " + e.Label
	}
	fmt.Fprintln(s.w, "Categories: "+strings.Join(labels, ", "))

	for _, c := range s.cards {
		fmt.Fprintln(s.w)
		fmt.Fprintln(s.w, c.Title)
		fmt.Fprintln(s.w, "  "+c.Excerpt)
		fmt.Fprintf(s.w, "  %s · %s\n", c.Source, c.Published)
		if len(c.Tags) > 0 {
			fmt.Fprintln(s.w, "  #"+strings.Join(c.Tags, " #"))
		}
		fmt.Fprintln(s.w, "  Read more: "+c.URL)
	}

	for _, st := range s.statuses {
		fmt.Fprintln(s.w, st)
	}
}
