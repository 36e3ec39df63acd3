package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	marketview "github.com/zappabad/coinwire/internal/market/view"
	newsview "github.com/zappabad/coinwire/internal/news/view"
)

// ProgramSurface forwards session render calls into a bubbletea program as
// messages, so all UI state stays on the program's goroutine.
type ProgramSurface struct {
	send func(tea.Msg)
}

// NewProgramSurface returns a surface sending to p.
func NewProgramSurface(p *tea.Program) *ProgramSurface {
	return &ProgramSurface{send: p.Send}
}

func (s *ProgramSurface) ShowLoading() { s.send(LoadingMsg{Show: true}) }

func (s *ProgramSurface) HideLoading() { s.send(LoadingMsg{Show: false}) }

func (s *ProgramSurface) ShowError(msg string) { s.send(ErrorMsg{Text: msg}) }

func (s *ProgramSurface) SetNav(entries []newsview.NavEntry) { s.send(NavMsg{Entries: entries}) }

func (s *ProgramSurface) SetArticles(cards []newsview.Card) { s.send(ArticlesMsg{Cards: cards}) }

func (s *ProgramSurface) SetTicker(items []marketview.TickerItem) {
	s.send(TickerMsg{Items: items})
}

func (s *ProgramSurface) SetStatus(msg string) { s.send(StatusMsg{Text: msg}) }

// LoadingMsg shows or hides the loading indicator.
type LoadingMsg struct{ Show bool }

// ErrorMsg switches the article area to an error message.
type ErrorMsg struct{ Text string }

// NavMsg replaces the category navigation.
type NavMsg struct{ Entries []newsview.NavEntry }

// ArticlesMsg replaces the article cards.
type ArticlesMsg struct{ Cards []newsview.Card }

// TickerMsg replaces the ticker strip.
type TickerMsg struct{ Items []marketview.TickerItem }

// StatusMsg sets the status bar note.
type StatusMsg struct{ Text string }
