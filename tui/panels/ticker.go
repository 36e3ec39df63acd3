package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	marketview "github.com/zappabad/coinwire/internal/market/view"
	"github.com/zappabad/coinwire/tui/styles"
)

// TickerPanel is the one-line price strip. It scrolls by rotating its items.
type TickerPanel struct {
	items  []marketview.TickerItem
	offset int
	width  int
}

// NewTickerPanel creates an empty ticker panel.
func NewTickerPanel() *TickerPanel {
	return &TickerPanel{}
}

// SetItems replaces the whole strip.
func (p *TickerPanel) SetItems(items []marketview.TickerItem) {
	p.items = items
	if p.offset >= len(items) {
		p.offset = 0
	}
}

// Items returns the current strip items.
func (p *TickerPanel) Items() []marketview.TickerItem {
	return p.items
}

// Advance scrolls the strip by one item.
func (p *TickerPanel) Advance() {
	if len(p.items) == 0 {
		return
	}
	p.offset = (p.offset + 1) % len(p.items)
}

// SetWidth sets the strip width.
func (p *TickerPanel) SetWidth(width int) {
	p.width = width
}

// View renders the strip, starting at the current offset and wrapping around.
func (p *TickerPanel) View() string {
	if len(p.items) == 0 {
		return styles.TickerStyle.Width(p.width).Render(styles.MutedStyle.Render("waiting for prices..."))
	}

	sep := styles.TickerSeparatorStyle.Render("  •  ")
	parts := make([]string, 0, len(p.items))
	for i := range p.items {
		item := p.items[(p.offset+i)%len(p.items)]
		style := styles.PriceUpStyle
		if item.Direction == marketview.PriceDown {
			style = styles.PriceDownStyle
		}
		parts = append(parts, style.Render(item.Text))
	}

	line := strings.Join(parts, sep)
	if p.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(p.width - 2).Render(line)
	}
	return styles.TickerStyle.Width(p.width).Render(line)
}
