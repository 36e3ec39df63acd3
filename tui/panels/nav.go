package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	newsview "github.com/zappabad/coinwire/internal/news/view"
	"github.com/zappabad/coinwire/tui/styles"
)

var (
	navLeft   = key.NewBinding(key.WithKeys("left", "h"))
	navRight  = key.NewBinding(key.WithKeys("right", "l"))
	navSelect = key.NewBinding(key.WithKeys("enter", " "))
	navQuick  = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"))
)

// NavPanel is the category navigation bar.
type NavPanel struct {
	entries []newsview.NavEntry
	cursor  int
	active  string
	focused bool
	width   int
	offset  int
}

const (
	navMoreLeft  = "‹ "
	navMoreRight = " ›"
)

// NewNavPanel creates an empty navigation bar.
func NewNavPanel() *NavPanel {
	return &NavPanel{active: newsview.AllCategory}
}

// Init initializes the panel.
func (p *NavPanel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and emits CategorySelectedMsg on selection.
func (p *NavPanel) Update(msg tea.Msg) (*NavPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused || len(p.entries) == 0 {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, navLeft):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, navRight):
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, navSelect):
		return p, p.selectCmd(p.cursor)
	case key.Matches(keyMsg, navQuick):
		i := int(keyMsg.String()[0] - '1')
		if i < len(p.entries) {
			p.cursor = i
			return p, p.selectCmd(i)
		}
	}
	return p, nil
}

func (p *NavPanel) selectCmd(i int) tea.Cmd {
	category := p.entries[i].Category
	return func() tea.Msg {
		return CategorySelectedMsg{Category: category}
	}
}

// View renders the bar. When the entries do not fit the width it shows a
// window that always contains the cursor, with markers on the cut sides.
func (p *NavPanel) View() string {
	items := make([]string, len(p.entries))
	for i, e := range p.entries {
		style := styles.NavItemStyle
		switch {
		case e.Category == p.active:
			style = styles.NavActiveStyle
		case p.focused && i == p.cursor:
			style = styles.NavCursorStyle
		}
		items[i] = style.Render(e.Icon + " " + e.Label)
	}

	start, end := p.window(items)
	row := strings.Join(items[start:end], "")
	if start > 0 {
		row = styles.MutedStyle.Render(navMoreLeft) + row
	}
	if end < len(items) {
		row += styles.MutedStyle.Render(navMoreRight)
	}
	return styles.NavBarStyle.Width(p.width).Render(row)
}

// window returns the range of items to draw and stores its start as the new
// offset. The range always holds the cursor and at least one item.
func (p *NavPanel) window(items []string) (int, int) {
	n := len(items)
	if n == 0 {
		return 0, 0
	}
	if p.width <= 0 {
		return 0, n
	}

	avail := p.width - 1
	fits := func(start, end int) bool {
		w := 0
		for _, it := range items[start:end] {
			w += lipgloss.Width(it)
		}
		if start > 0 {
			w += lipgloss.Width(navMoreLeft)
		}
		if end < n {
			w += lipgloss.Width(navMoreRight)
		}
		return w <= avail
	}

	cursor := min(max(p.cursor, 0), n-1)
	start := min(p.offset, cursor)
	for start < cursor && !fits(start, cursor+1) {
		start++
	}
	end := max(start+1, cursor+1)
	for end < n && fits(start, end+1) {
		end++
	}
	for start > 0 && fits(start-1, end) {
		start--
	}
	p.offset = start
	return start, end
}

// SetEntries replaces the entries and resets the selection to the first one.
func (p *NavPanel) SetEntries(entries []newsview.NavEntry) {
	p.entries = entries
	p.cursor = 0
	p.offset = 0
	if len(entries) > 0 {
		p.active = entries[0].Category
	}
}

// Entries returns the current entries.
func (p *NavPanel) Entries() []newsview.NavEntry {
	return p.entries
}

// SetActive marks the category whose articles are shown.
func (p *NavPanel) SetActive(category string) {
	p.active = category
}

// Active returns the category whose articles are shown.
func (p *NavPanel) Active() string {
	return p.active
}

// SetFocus sets the focus state of the panel.
func (p *NavPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetWidth sets the bar width.
func (p *NavPanel) SetWidth(width int) {
	p.width = width
}

// CategorySelectedMsg is sent when a navigation entry is chosen.
type CategorySelectedMsg struct {
	Category string
}
