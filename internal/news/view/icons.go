package view

// DefaultIconKey names the icon used for categories without their own.
const DefaultIconKey = "Default"

// AllIcon decorates the synthetic "all" navigation entry.
const AllIcon = "🌐"

var categoryIcons = map[string]string{
	"Blockchain":   "🔗",
	"Bitcoin":      "₿",
	"Ethereum":     "Ξ",
	"Altcoin":      "🪙",
	"Trading":      "📈",
	"Mining":       "⛏",
	"ICO":          "🚀",
	"Regulation":   "⚖",
	"Exchange":     "⇄",
	"Wallet":       "👛",
	"ICP":          "∞",
	DefaultIconKey: "📰",
}

// IconFor returns the icon for a category label. Matching is exact; unknown
// labels get the default icon.
func IconFor(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return categoryIcons[DefaultIconKey]
}
