package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	newsview "github.com/zappabad/coinwire/internal/news/view"
	"github.com/zappabad/coinwire/tui/styles"
)

var (
	articleUp   = key.NewBinding(key.WithKeys("up", "k"))
	articleDown = key.NewBinding(key.WithKeys("down", "j"))
	articleOpen = key.NewBinding(key.WithKeys("o", "enter"))
)

// ArticlesPanel displays the article cards of the selected category.
type ArticlesPanel struct {
	cards         []newsview.Card
	selectedIndex int
	cardStarts    []int
	cardEnds      []int

	vp      viewport.Model
	focused bool
	width   int
	height  int
}

// NewArticlesPanel creates an empty articles panel.
func NewArticlesPanel() *ArticlesPanel {
	return &ArticlesPanel{vp: viewport.New(0, 0)}
}

// Init initializes the panel.
func (p *ArticlesPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ArticlesPanel) Update(msg tea.Msg) (*ArticlesPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, articleUp):
		if p.selectedIndex > 0 {
			p.selectedIndex--
			p.render()
		}
	case key.Matches(keyMsg, articleDown):
		if p.selectedIndex < len(p.cards)-1 {
			p.selectedIndex++
			p.render()
		}
	case key.Matches(keyMsg, articleOpen):
		if card := p.SelectedCard(); card != nil {
			url := card.URL
			return p, func() tea.Msg { return OpenArticleMsg{URL: url} }
		}
	}
	return p, nil
}

// View renders the panel.
func (p *ArticlesPanel) View() string {
	title := fmt.Sprintf("📰 Today's News (%d)", len(p.cards))
	var body string
	if len(p.cards) == 0 {
		body = styles.MutedStyle.Render("No articles in this category")
	} else {
		body = p.vp.View()
	}
	return p.frame(title, body)
}

// ViewMessage renders the panel with msg in place of the cards.
func (p *ArticlesPanel) ViewMessage(msg string) string {
	return p.frame("📰 Today's News", msg)
}

func (p *ArticlesPanel) frame(title, body string) string {
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}
	panel := lipgloss.JoinVertical(lipgloss.Left, styles.RenderTitle(title, p.focused), body)
	return panelStyle.Width(max(p.width-2, 0)).Height(max(p.height-2, 0)).Render(panel)
}

// SetCards replaces every card and resets the selection.
func (p *ArticlesPanel) SetCards(cards []newsview.Card) {
	p.cards = cards
	p.selectedIndex = 0
	p.vp.GotoTop()
	p.render()
}

// Cards returns the cards shown.
func (p *ArticlesPanel) Cards() []newsview.Card {
	return p.cards
}

// SelectedCard returns the currently selected card.
func (p *ArticlesPanel) SelectedCard() *newsview.Card {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.cards) {
		return &p.cards[p.selectedIndex]
	}
	return nil
}

// SetFocus sets the focus state of the panel.
func (p *ArticlesPanel) SetFocus(focused bool) {
	if p.focused != focused {
		p.focused = focused
		p.render()
	}
}

// SetSize sets the panel dimensions.
func (p *ArticlesPanel) SetSize(width, height int) {
	if width == p.width && height == p.height {
		return
	}
	p.width = width
	p.height = height
	// border (2) + padding (2); border (2) + title (1)
	p.vp.Width = max(width-4, 1)
	p.vp.Height = max(height-3, 1)
	p.render()
}

// render rebuilds the viewport content and keeps the selected card visible.
func (p *ArticlesPanel) render() {
	var b strings.Builder
	p.cardStarts = p.cardStarts[:0]
	p.cardEnds = p.cardEnds[:0]

	line := 0
	for i, c := range p.cards {
		block := renderCard(c, p.vp.Width, i == p.selectedIndex && p.focused)
		p.cardStarts = append(p.cardStarts, line)
		line += lipgloss.Height(block)
		p.cardEnds = append(p.cardEnds, line)

		b.WriteString(block)
		if i < len(p.cards)-1 {
			b.WriteString("\n\n")
			line++
		}
	}
	p.vp.SetContent(b.String())

	if p.selectedIndex < len(p.cardStarts) {
		start, end := p.cardStarts[p.selectedIndex], p.cardEnds[p.selectedIndex]
		switch {
		case start < p.vp.YOffset:
			p.vp.SetYOffset(start)
		case end > p.vp.YOffset+p.vp.Height:
			p.vp.SetYOffset(end - p.vp.Height)
		}
	}
}

func renderCard(c newsview.Card, width int, selected bool) string {
	titleStyle := styles.ArticleTitleStyle
	marker := "  "
	if selected {
		titleStyle = styles.SelectedTitleStyle
		marker = "▶ "
	}
	wrap := lipgloss.NewStyle().Width(max(width-2, 1))

	lines := []string{
		marker + wrap.Inherit(titleStyle).Render(c.Title),
		"  " + wrap.Inherit(styles.ExcerptStyle).Render(c.Excerpt),
		"  " + styles.MetaStyle.Render("👤 "+c.Source+"  🕒 "+c.Published),
	}

	if len(c.Tags) > 0 {
		tags := make([]string, len(c.Tags))
		for i, t := range c.Tags {
			tags[i] = styles.TagStyle.Render("#" + t)
		}
		lines = append(lines, "  "+strings.Join(tags, ""))
	}
	if c.ImageURL != "" {
		lines = append(lines, "  "+styles.MetaStyle.Render("🖼  "+c.ImageURL))
	}
	lines = append(lines, "  "+styles.LinkStyle.Render("Read more: "+c.URL))
	return strings.Join(lines, "\n")
}

// OpenArticleMsg asks for an article's link to be opened.
type OpenArticleMsg struct {
	URL string
}
