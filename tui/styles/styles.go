package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	UpColor    = lipgloss.Color("#10B981") // Green
	DownColor  = lipgloss.Color("#EF4444") // Red
	ErrorColor = lipgloss.Color("#EF4444")

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	TickerBackground = lipgloss.Color("#111827")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)
)

// Ticker styles
var (
	TickerStyle = lipgloss.NewStyle().
			Background(TickerBackground).
			Padding(0, 1)

	PriceUpStyle = lipgloss.NewStyle().
			Background(TickerBackground).
			Foreground(UpColor)

	PriceDownStyle = lipgloss.NewStyle().
			Background(TickerBackground).
			Foreground(DownColor)

	TickerSeparatorStyle = lipgloss.NewStyle().
				Background(TickerBackground).
				Foreground(TextMutedColor)
)

// Navigation styles
var (
	NavBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			PaddingLeft(1)

	NavItemStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	NavActiveStyle = lipgloss.NewStyle().
			Background(PrimaryColor).
			Foreground(TextColor).
			Bold(true).
			Padding(0, 1)

	NavCursorStyle = lipgloss.NewStyle().
			Background(BorderColor).
			Foreground(TextColor).
			Padding(0, 1)
)

// Article styles
var (
	ArticleTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor)

	SelectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(AccentColor)

	ExcerptStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MetaStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	TagStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Padding(0, 1)

	LinkStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Underline(true)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// RenderTitle renders a panel title bar.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}
