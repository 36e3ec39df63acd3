package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	newsview "github.com/zappabad/coinwire/internal/news/view"
	"github.com/zappabad/coinwire/internal/session"
	"github.com/zappabad/coinwire/tui/panels"
	"github.com/zappabad/coinwire/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusNav      PanelFocus = 0
	FocusArticles PanelFocus = 1
)

const panelCount = 2

// marqueeInterval is how often the ticker strip scrolls by one item.
const marqueeInterval = 3 * time.Second

// Selector returns the cards for a navigation choice.
type Selector interface {
	Select(category string) []newsview.Card
}

// Session is the load sequence driving the UI.
type Session interface {
	Selector
	Run(ctx context.Context, surface session.Surface) error
	Wait()
}

// Model is the main TUI application model.
type Model struct {
	selector Selector
	openURL  func(string) error

	// Panels
	tickerPanel   *panels.TickerPanel
	navPanel      *panels.NavPanel
	articlesPanel *panels.ArticlesPanel
	spinner       spinner.Model

	// Focus management
	focusedPanel PanelFocus

	// Window dimensions
	width  int
	height int

	// Status
	loading   bool
	errText   string
	statusMsg string
	ready     bool
}

// NewModel creates a new TUI model. Category choices are resolved through
// selector; links are opened with openURL.
func NewModel(selector Selector, openURL func(string) error) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.SpinnerStyle

	return &Model{
		selector:      selector,
		openURL:       openURL,
		tickerPanel:   panels.NewTickerPanel(),
		navPanel:      panels.NewNavPanel(),
		articlesPanel: panels.NewArticlesPanel(),
		spinner:       sp,
		focusedPanel:  FocusNav,
		loading:       true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.navPanel.Init(),
		m.articlesPanel.Init(),
		m.spinner.Tick,
		marqueeTick(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.focusedPanel = (m.focusedPanel + 1) % panelCount
		case "shift+tab":
			m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true

	case LoadingMsg:
		m.loading = msg.Show
		if m.loading {
			cmds = append(cmds, m.spinner.Tick)
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ErrorMsg:
		m.errText = msg.Text

	case NavMsg:
		m.navPanel.SetEntries(msg.Entries)

	case ArticlesMsg:
		m.articlesPanel.SetCards(msg.Cards)

	case TickerMsg:
		m.tickerPanel.SetItems(msg.Items)

	case StatusMsg:
		m.statusMsg = msg.Text

	case panels.CategorySelectedMsg:
		m.navPanel.SetActive(msg.Category)
		m.articlesPanel.SetCards(m.selector.Select(msg.Category))
		m.focusedPanel = FocusArticles

	case panels.OpenArticleMsg:
		cmds = append(cmds, m.open(msg.URL))

	case openResultMsg:
		m.statusMsg = msg.message

	case marqueeMsg:
		m.tickerPanel.Advance()
		cmds = append(cmds, marqueeTick())
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	m.navPanel.SetFocus(m.focusedPanel == FocusNav)
	m.articlesPanel.SetFocus(m.focusedPanel == FocusArticles)

	switch m.focusedPanel {
	case FocusNav:
		m.navPanel, cmd = m.navPanel.Update(msg)
	case FocusArticles:
		m.articlesPanel, cmd = m.articlesPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌──────────────── ticker ────────────────┐
	// │ nav                                    │
	// ├────────────────────────────────────────┤
	// │ error banner (only beside articles)    │
	// │ articles / loading / error             │
	// └────────────────────────────────────────┘
	// status bar

	m.resize()

	var main string
	switch {
	case m.errorBanner():
		main = lipgloss.JoinVertical(lipgloss.Left,
			styles.ErrorStyle.Width(m.width).Render(m.errText),
			m.articlesPanel.View(),
		)
	case m.errText != "":
		main = m.articlesPanel.ViewMessage(styles.ErrorStyle.Render(m.errText))
	case m.loading && len(m.articlesPanel.Cards()) == 0:
		main = m.articlesPanel.ViewMessage(m.spinner.View() + " Loading news...")
	default:
		main = m.articlesPanel.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tickerPanel.View(),
		m.navPanel.View(),
		main,
		m.renderStatusBar(),
	)
}

// resize lays the panels out: ticker, nav and status bar take a line each,
// plus one for the error banner when it is shown.
func (m *Model) resize() {
	m.tickerPanel.SetWidth(m.width)
	m.navPanel.SetWidth(m.width)
	rows := 3
	if m.errorBanner() {
		rows++
	}
	m.articlesPanel.SetSize(m.width, max(m.height-rows, 3))
}

// errorBanner reports whether an error sits above articles that were
// already rendered, as when the first price fetch fails.
func (m *Model) errorBanner() bool {
	return m.errText != "" && len(m.articlesPanel.Cards()) > 0
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("Tab") + styles.StatusBarDescStyle.Render(" focus"),
		styles.StatusBarKeyStyle.Render("←→/1-9") + styles.StatusBarDescStyle.Render(" category"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("o") + styles.StatusBarDescStyle.Render(" open"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := lipgloss.JoinHorizontal(lipgloss.Center, help[0], " │ ", help[1], " │ ", help[2], " │ ", help[3], " │ ", help[4])

	status := ""
	if m.loading && len(m.articlesPanel.Cards()) > 0 {
		status = " │ " + m.spinner.View() + " loading prices"
	}
	if m.statusMsg != "" {
		status += " │ " + m.statusMsg
	}

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

func (m *Model) open(url string) tea.Cmd {
	return func() tea.Msg {
		if err := m.openURL(url); err != nil {
			return openResultMsg{message: "✗ " + err.Error()}
		}
		return openResultMsg{message: fmt.Sprintf("✓ Opened %s", url)}
	}
}

// openResultMsg is sent after a link was handed to the browser.
type openResultMsg struct {
	message string
}

// marqueeMsg scrolls the ticker strip.
type marqueeMsg struct{}

func marqueeTick() tea.Cmd {
	return tea.Tick(marqueeInterval, func(time.Time) tea.Msg {
		return marqueeMsg{}
	})
}

// Run starts the program and the session feeding it. It returns when the
// user quits or ctx is cancelled.
func Run(ctx context.Context, sess Session, openURL func(string) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(sess, openURL)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	loaded := make(chan struct{})
	go func() {
		defer close(loaded)
		sess.Run(ctx, NewProgramSurface(p))
	}()

	_, err := p.Run()
	cancel()
	<-loaded
	sess.Wait()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
