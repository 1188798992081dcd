package theme

import "github.com/thenoetrevino/jot/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Delete         string
	Border         string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Title = scheme.Title
	Create = scheme.Create
	Delete = scheme.Delete
	Border = scheme.Border
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
